package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SystemConfigID 全局配置单例主键
const SystemConfigID = "global"

// RiskThresholds 风险阈值（jsonb）
type RiskThresholds struct {
	RevenueGap   float64 `json:"revenueGap"`
	TurnoverRate float64 `json:"turnoverRate"`
}

func (t RiskThresholds) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *RiskThresholds) Scan(value interface{}) error {
	if value == nil {
		*t = RiskThresholds{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan RiskThresholds: %v", value)
	}
	return json.Unmarshal(bytes, t)
}

// ResourceLinks 资源链接（jsonb）
type ResourceLinks struct {
	TemplateURL string `json:"templateUrl"`
	GuideURL    string `json:"guideUrl"`
}

func (r ResourceLinks) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *ResourceLinks) Scan(value interface{}) error {
	if value == nil {
		*r = ResourceLinks{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan ResourceLinks: %v", value)
	}
	return json.Unmarshal(bytes, r)
}

// SystemConfig 全局系统配置，系统内只存在一条 id=global 的记录
type SystemConfig struct {
	ID              string         `json:"-" gorm:"primaryKey;size:16"`
	RiskThresholds  RiskThresholds `json:"riskThresholds" gorm:"type:jsonb"`
	Resources       ResourceLinks  `json:"resources" gorm:"type:jsonb"`
	MaintenanceMode bool           `json:"maintenanceMode" gorm:"not null;default:false"`
}

func (SystemConfig) TableName() string {
	return "system_config"
}

// DashboardBundle 看板聚合数据，一次请求返回全部集合
type DashboardBundle struct {
	Projects []Project            `json:"projects"`
	Metrics  []WeeklyMetric       `json:"metrics"`
	PMs      []PMProfile          `json:"pms"`
	Tasks    []TransformationTask `json:"tasks"`
	Config   SystemConfig         `json:"config"`
}
