// Package risk 风险判定规则
// 纯函数，无副作用；由展示层按指标行逐条调用
package risk

import (
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
)

// Assessment 单条指标的风险判定结果
// 三个分项布尔值和营收缺口一并返回，供前端展示归因
type Assessment struct {
	RevenueGap     float64 `json:"revenueGap"`
	IsRevenueRisk  bool    `json:"isRevenueRisk"`
	IsSLAMiss      bool    `json:"isSlaMiss"`
	IsTurnoverRisk bool    `json:"isTurnoverRisk"`
	IsRisk         bool    `json:"isRisk"`
}

// Evaluate 对单条周度指标做风险判定
// revenueGap = (actual - target) / target，负值表示缺口
// 目标营收为0或负数时视为无营收风险（gap记0），避免除零
func Evaluate(metric entity.WeeklyMetric, project entity.Project, cfg entity.SystemConfig) Assessment {
	var a Assessment

	if metric.RevenueTarget > 0 {
		a.RevenueGap = (metric.RevenueActual - metric.RevenueTarget) / metric.RevenueTarget
		a.IsRevenueRisk = a.RevenueGap < -cfg.RiskThresholds.RevenueGap
	}

	a.IsSLAMiss = metric.SLAAchieved < project.SLATargetRate
	a.IsTurnoverRisk = metric.TurnoverRate > cfg.RiskThresholds.TurnoverRate
	a.IsRisk = metric.RiskFlag || a.IsRevenueRisk || a.IsSLAMiss || a.IsTurnoverRisk

	return a
}

// CountAtRisk 统计指标集中触发风险的条数
func CountAtRisk(metrics []entity.WeeklyMetric, projects []entity.Project, cfg entity.SystemConfig) int {
	byCode := make(map[string]entity.Project, len(projects))
	for _, p := range projects {
		byCode[p.ProjectCode] = p
	}

	count := 0
	for _, m := range metrics {
		p, ok := byCode[m.ProjectCode]
		if !ok {
			continue
		}
		if Evaluate(m, p, cfg).IsRisk {
			count++
		}
	}
	return count
}
