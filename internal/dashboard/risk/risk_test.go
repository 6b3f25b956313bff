package risk

import (
	"math"
	"testing"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
)

func testConfig() entity.SystemConfig {
	return entity.SystemConfig{
		ID: entity.SystemConfigID,
		RiskThresholds: entity.RiskThresholds{
			RevenueGap:   0.05,
			TurnoverRate: 0.10,
		},
	}
}

func TestEvaluateRevenueRiskBoundary(t *testing.T) {
	cfg := testConfig()
	project := entity.Project{ProjectCode: "Project_Alpha", SLATargetRate: 0.90}

	cases := []struct {
		name    string
		actual  float64
		target  float64
		wantGap float64
		want    bool
	}{
		{"above target", 110000, 100000, 0.10, false},
		{"exactly on target", 100000, 100000, 0, false},
		{"shortfall exactly at threshold", 95000, 100000, -0.05, false},
		{"shortfall just past threshold", 94999, 100000, -0.05001, true},
		{"deep shortfall", 45000, 50000, -0.10, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := entity.WeeklyMetric{
				ProjectCode:   project.ProjectCode,
				RevenueActual: tc.actual,
				RevenueTarget: tc.target,
				SLAAchieved:   0.95,
				TurnoverRate:  0.01,
			}
			got := Evaluate(m, project, cfg)
			if got.IsRevenueRisk != tc.want {
				t.Fatalf("IsRevenueRisk = %v, want %v (gap=%f)", got.IsRevenueRisk, tc.want, got.RevenueGap)
			}
			if math.Abs(got.RevenueGap-tc.wantGap) > 1e-9 {
				t.Fatalf("RevenueGap = %f, want %f", got.RevenueGap, tc.wantGap)
			}
		})
	}
}

func TestEvaluateZeroTargetIsNoRisk(t *testing.T) {
	cfg := testConfig()
	project := entity.Project{ProjectCode: "Project_Alpha", SLATargetRate: 0}

	m := entity.WeeklyMetric{
		ProjectCode:   project.ProjectCode,
		RevenueActual: 1000,
		RevenueTarget: 0,
		SLAAchieved:   0.99,
	}
	got := Evaluate(m, project, cfg)
	if got.IsRevenueRisk {
		t.Fatal("zero revenue target must not flag revenue risk")
	}
	if got.RevenueGap != 0 {
		t.Fatalf("RevenueGap = %f, want 0", got.RevenueGap)
	}
	if got.IsRisk {
		t.Fatal("no dimension triggered, IsRisk must be false")
	}
}

func TestEvaluateSLAMissAndTurnover(t *testing.T) {
	cfg := testConfig()
	project := entity.Project{ProjectCode: "Project_Tango", SLATargetRate: 0.98}

	m := entity.WeeklyMetric{
		ProjectCode:   project.ProjectCode,
		RevenueActual: 15500,
		RevenueTarget: 15000,
		SLAAchieved:   0.92,
		TurnoverRate:  0.15,
	}
	got := Evaluate(m, project, cfg)
	if !got.IsSLAMiss {
		t.Fatal("SLA 0.92 below target 0.98 must flag SLA miss")
	}
	if !got.IsTurnoverRisk {
		t.Fatal("turnover 0.15 above threshold 0.10 must flag turnover risk")
	}
	if got.IsRevenueRisk {
		t.Fatal("revenue above target must not flag revenue risk")
	}
	if !got.IsRisk {
		t.Fatal("composite IsRisk must be true")
	}
}

func TestEvaluateManualFlagOverrides(t *testing.T) {
	cfg := testConfig()
	project := entity.Project{ProjectCode: "Project_Gemma", SLATargetRate: 0.95}

	m := entity.WeeklyMetric{
		ProjectCode:   project.ProjectCode,
		RevenueActual: 120000,
		RevenueTarget: 120000,
		SLAAchieved:   0.999,
		TurnoverRate:  0.005,
		RiskFlag:      true,
	}
	got := Evaluate(m, project, cfg)
	if got.IsRevenueRisk || got.IsSLAMiss || got.IsTurnoverRisk {
		t.Fatal("no rule dimension should trigger")
	}
	if !got.IsRisk {
		t.Fatal("manual flag alone must set IsRisk")
	}
}

// 端到端场景：营收缺口10%触发风险，即使SLA达标且无手工标记
func TestEvaluateEndToEndScenario(t *testing.T) {
	cfg := testConfig()
	project := entity.Project{ProjectCode: "Project_Alpha", SLATargetRate: 0.95}

	m := entity.WeeklyMetric{
		ProjectCode:   project.ProjectCode,
		RevenueActual: 45000,
		RevenueTarget: 50000,
		SLAAchieved:   0.96,
		TurnoverRate:  0.02,
		RiskFlag:      false,
	}
	got := Evaluate(m, project, cfg)
	if math.Abs(got.RevenueGap-(-0.10)) > 1e-9 {
		t.Fatalf("RevenueGap = %f, want -0.10", got.RevenueGap)
	}
	if !got.IsRevenueRisk {
		t.Fatal("10%% shortfall must flag revenue risk")
	}
	if got.IsSLAMiss {
		t.Fatal("SLA 0.96 above target 0.95, must not flag")
	}
	if !got.IsRisk {
		t.Fatal("IsRisk must be true")
	}
}

func TestCountAtRisk(t *testing.T) {
	cfg := testConfig()
	projects := []entity.Project{
		{ProjectCode: "Project_Alpha", SLATargetRate: 0.95},
		{ProjectCode: "Project_Tango", SLATargetRate: 0.98},
	}
	metrics := []entity.WeeklyMetric{
		{ProjectCode: "Project_Alpha", RevenueActual: 45000, RevenueTarget: 50000, SLAAchieved: 0.96},
		{ProjectCode: "Project_Tango", RevenueActual: 15500, RevenueTarget: 15000, SLAAchieved: 0.99},
		{ProjectCode: "Project_Unknown", RevenueActual: 0, RevenueTarget: 100}, // 无归属项目，跳过
	}

	if got := CountAtRisk(metrics, projects, cfg); got != 1 {
		t.Fatalf("CountAtRisk = %d, want 1", got)
	}
}
