package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/config"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/service"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/testutil"
)

func setupDashboardTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.SeedAll(t, db)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, &config.Config{})
	h := NewHandlers(services)

	r := testutil.SetupRouter()
	api := testutil.AuthGroup(r, "/api")
	api.GET("/dashboard", h.Dashboard.GetDashboard)
	return r
}

func TestGetDashboardRequiresAuth(t *testing.T) {
	r := setupDashboardTest(t)

	w := testutil.DoRequest(r, http.MethodGet, "/api/dashboard", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("未带令牌应返回401, 实际%d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if resp["error"] == nil {
		t.Errorf("错误响应应含error字段: %v", resp)
	}
}

func TestGetDashboardAsDirector(t *testing.T) {
	r := setupDashboardTest(t)

	w := testutil.DoRequest(r, http.MethodGet, "/api/dashboard", nil, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("请求失败: %d %s", w.Code, w.Body.String())
	}

	var bundle entity.DashboardBundle
	if err := json.Unmarshal(w.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if len(bundle.Projects) != 4 {
		t.Errorf("总监应见全部4个项目, 实际%d", len(bundle.Projects))
	}
	if len(bundle.Metrics) != 4 || len(bundle.PMs) != 3 || len(bundle.Tasks) != 4 {
		t.Errorf("聚合数据不完整: metrics=%d pms=%d tasks=%d",
			len(bundle.Metrics), len(bundle.PMs), len(bundle.Tasks))
	}
	if bundle.Config.RiskThresholds.RevenueGap != 0.05 {
		t.Errorf("配置未返回: %+v", bundle.Config)
	}
}

func TestGetDashboardScopesPMToAssignedProjects(t *testing.T) {
	r := setupDashboardTest(t)

	w := testutil.DoRequest(r, http.MethodGet, "/api/dashboard", nil, testutil.PMToken())
	if w.Code != http.StatusOK {
		t.Fatalf("请求失败: %d %s", w.Code, w.Body.String())
	}

	var bundle entity.DashboardBundle
	if err := json.Unmarshal(w.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if len(bundle.Projects) != 2 {
		t.Errorf("PM应只见2个授权项目, 实际%d", len(bundle.Projects))
	}
	allowed := map[string]bool{"Project_Alpha": true, "Project_Sierra": true}
	for _, p := range bundle.Projects {
		if !allowed[p.ProjectCode] {
			t.Errorf("越权项目: %s", p.ProjectCode)
		}
	}
	for _, m := range bundle.Metrics {
		if !allowed[m.ProjectCode] {
			t.Errorf("越权指标: %s", m.ProjectCode)
		}
	}
}
