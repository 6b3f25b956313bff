package entity

// Project 项目主数据
// ProjectName 为敏感字段（真实客户名），对外只暴露 ProjectCode
type Project struct {
	ID               string  `json:"id" gorm:"primaryKey;size:32"`
	ProjectName      string  `json:"projectName" gorm:"size:128;not null"`
	ProjectCode      string  `json:"projectCode" gorm:"size:64;not null;uniqueIndex"`
	BusinessType     string  `json:"businessType" gorm:"size:16;not null"`
	PMID             string  `json:"pmId" gorm:"column:pm_id;size:32"`
	ProfitTargetRate float64 `json:"profitTargetRate" gorm:"not null;default:0"`
	SLATargetRate    float64 `json:"slaTargetRate" gorm:"column:sla_target_rate;not null;default:0"`
	Status           string  `json:"status" gorm:"size:16;not null;default:Running"`
	CustomFields     JSONMap `json:"customFields,omitempty" gorm:"type:jsonb"`
}

func (Project) TableName() string {
	return "projects"
}

// BusinessType 业务线类型
const (
	BusinessTypeBPO = "BPO"
	BusinessTypeHRO = "HRO"
	BusinessTypeRPO = "RPO"
)

// ProjectStatus 项目生命周期状态
const (
	ProjectStatusRunning = "Running"
	ProjectStatusRampUp  = "Ramp-up"
	ProjectStatusClosed  = "Closed"
)
