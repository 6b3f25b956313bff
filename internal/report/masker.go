// Package report 高管周报生成
// 发送给外部文本生成服务前先脱敏：只带项目代号，绝不带真实项目名，
// 绝对营收换算为达成率以隐藏财务规模
package report

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
)

// MaskedMetric 脱敏后的单条指标
type MaskedMetric struct {
	ProjectCode        string `json:"projectCode"`
	RevenueAchievement string `json:"revenueAchievement"`
	SLAAchieved        string `json:"slaAchieved"`
	SLATarget          string `json:"slaTarget"`
	RiskFlag           bool   `json:"riskFlag"`
	RiskDetails        string `json:"riskDetails"`
	BusinessType       string `json:"businessType"`
}

// Mask 生成脱敏载荷
// 无归属项目的指标直接丢弃；目标营收为0时达成率记 N/A
func Mask(projects []entity.Project, metrics []entity.WeeklyMetric) []MaskedMetric {
	byCode := make(map[string]entity.Project, len(projects))
	for _, p := range projects {
		byCode[p.ProjectCode] = p
	}

	masked := make([]MaskedMetric, 0, len(metrics))
	for _, m := range metrics {
		project, ok := byCode[m.ProjectCode]
		if !ok {
			continue
		}

		achievement := "N/A"
		if m.RevenueTarget > 0 {
			achievement = fmt.Sprintf("%.0f%%", m.RevenueActual/m.RevenueTarget*100)
		}

		masked = append(masked, MaskedMetric{
			ProjectCode:        m.ProjectCode,
			RevenueAchievement: achievement,
			SLAAchieved:        fmt.Sprintf("%.1f%%", m.SLAAchieved*100),
			SLATarget:          fmt.Sprintf("%.1f%%", project.SLATargetRate*100),
			RiskFlag:           m.RiskFlag,
			RiskDetails:        m.RiskDetails,
			BusinessType:       project.BusinessType,
		})
	}
	return masked
}

// MaskJSON 脱敏载荷的JSON文本
func MaskJSON(projects []entity.Project, metrics []entity.WeeklyMetric) (string, error) {
	data, err := json.MarshalIndent(Mask(projects, metrics), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal masked payload: %w", err)
	}
	return string(data), nil
}

// Unmask 把报告文本中的项目代号还原为 "项目名 (代号)"
// 只在本地展示时调用，还原后的文本不得回传外部服务
func Unmask(reportText string, projects []entity.Project) string {
	unmasked := reportText
	for _, p := range projects {
		if p.ProjectCode == "" {
			continue
		}
		re := regexp.MustCompile(regexp.QuoteMeta(p.ProjectCode))
		unmasked = re.ReplaceAllString(unmasked, fmt.Sprintf("%s (%s)", p.ProjectName, p.ProjectCode))
	}
	return unmasked
}

// ContainsSensitive 校验文本中是否泄露了任何项目真实名称
func ContainsSensitive(text string, projects []entity.Project) bool {
	for _, p := range projects {
		if p.ProjectName != "" && strings.Contains(text, p.ProjectName) {
			return true
		}
	}
	return false
}
