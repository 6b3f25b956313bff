package entity

// WeeklyMetric 项目周度快照
// 以 (ProjectCode, ReportWeek) 为业务主键，同周重复上传时覆盖旧记录
type WeeklyMetric struct {
	ID            string  `json:"id" gorm:"primaryKey;size:32"`
	ProjectCode   string  `json:"projectCode" gorm:"size:64;not null;index:idx_metrics_code_week,unique"`
	ReportWeek    string  `json:"reportWeek" gorm:"size:10;not null;index:idx_metrics_code_week,unique"`
	RevenueActual float64 `json:"revenueActual" gorm:"not null;default:0"`
	RevenueTarget float64 `json:"revenueTarget" gorm:"not null;default:0"`
	Headcount     int     `json:"headcount" gorm:"not null;default:0"`
	SLAAchieved   float64 `json:"slaAchieved" gorm:"column:sla_achieved;not null;default:0"`
	TurnoverRate  float64 `json:"turnoverRate" gorm:"not null;default:0"`
	RiskFlag      bool    `json:"riskFlag" gorm:"not null;default:false"`
	RiskDetails   string  `json:"riskDetails" gorm:"type:text"`
}

func (WeeklyMetric) TableName() string {
	return "metrics"
}
