package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/config"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/service"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/testutil"
)

func setupMetricTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.SeedAll(t, db)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, &config.Config{})
	h := NewHandlers(services)

	r := testutil.SetupRouter()
	api := testutil.AuthGroup(r, "/api")
	api.POST("/upload", h.Metric.Upload)
	api.POST("/pms", h.PM.CreatePM)
	api.PUT("/pms/:id", h.PM.UpdatePM)
	api.DELETE("/pms/:id", h.PM.DeletePM)
	api.POST("/projects", h.Project.CreateProject)
	api.POST("/users", h.User.SaveUser)
	return r, db
}

func uploadBody(metrics ...entity.WeeklyMetric) map[string]interface{} {
	return map[string]interface{}{"metrics": metrics}
}

func TestUploadInsertsNewWeek(t *testing.T) {
	r, db := setupMetricTest(t)

	body := uploadBody(entity.WeeklyMetric{
		ProjectCode:   "Project_Alpha",
		ReportWeek:    "2023-10-30",
		RevenueActual: 52000,
		RevenueTarget: 50000,
		Headcount:     118,
		SLAAchieved:   0.97,
		TurnoverRate:  0.015,
	})
	w := testutil.DoRequest(r, http.MethodPost, "/api/upload", body, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("上传失败: %d %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["success"] != true || resp["count"].(float64) != 1 {
		t.Errorf("响应不符: %v", resp)
	}

	var count int64
	db.Model(&entity.WeeklyMetric{}).Where("project_code = ?", "Project_Alpha").Count(&count)
	if count != 2 {
		t.Errorf("新报告周应追加而非覆盖, Project_Alpha 应有2条, 实际%d", count)
	}
}

func TestUploadUpsertsSameWeek(t *testing.T) {
	r, db := setupMetricTest(t)

	// 种子里 Project_Alpha 2023-10-23 已存在，重传同周应更新而非新增
	body := uploadBody(entity.WeeklyMetric{
		ProjectCode:   "Project_Alpha",
		ReportWeek:    "2023-10-23",
		RevenueActual: 46000,
		RevenueTarget: 50000,
		Headcount:     120,
		SLAAchieved:   0.96,
		TurnoverRate:  0.02,
		RiskDetails:   "修正后的数据。",
	})
	w := testutil.DoRequest(r, http.MethodPost, "/api/upload", body, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("上传失败: %d %s", w.Code, w.Body.String())
	}

	var metrics []entity.WeeklyMetric
	db.Where("project_code = ? AND report_week = ?", "Project_Alpha", "2023-10-23").Find(&metrics)
	if len(metrics) != 1 {
		t.Fatalf("同项目同报告周应只有1条, 实际%d", len(metrics))
	}
	if metrics[0].RevenueActual != 46000 {
		t.Errorf("重传应更新数值, 实际%v", metrics[0].RevenueActual)
	}
	if metrics[0].RiskDetails != "修正后的数据。" {
		t.Errorf("风险描述未更新: %s", metrics[0].RiskDetails)
	}
}

func TestUploadRejectsInvalidMetrics(t *testing.T) {
	r, _ := setupMetricTest(t)

	cases := []struct {
		name   string
		metric entity.WeeklyMetric
	}{
		{"缺项目编码", entity.WeeklyMetric{ReportWeek: "2023-10-30", RevenueActual: 1}},
		{"缺报告周", entity.WeeklyMetric{ProjectCode: "Project_Alpha", RevenueActual: 1}},
		{"负营收", entity.WeeklyMetric{ProjectCode: "Project_Alpha", ReportWeek: "2023-10-30", RevenueActual: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := testutil.DoRequest(r, http.MethodPost, "/api/upload", uploadBody(tc.metric), testutil.DirectorToken())
			if w.Code != http.StatusBadRequest {
				t.Errorf("应返回400, 实际%d: %s", w.Code, w.Body.String())
			}
			resp := testutil.ParseResponse(w)
			if resp["error"] == nil {
				t.Errorf("错误响应应含error字段: %v", resp)
			}
		})
	}
}

// 不带id的新增走服务端生成，生成的主键必须能放进 varchar(32) 列
func TestCreateWithoutIDFitsKeyColumn(t *testing.T) {
	r, db := setupMetricTest(t)

	body := uploadBody(entity.WeeklyMetric{
		ProjectCode:   "Project_Gemma",
		ReportWeek:    "2023-10-30",
		RevenueActual: 125000,
		RevenueTarget: 120000,
		Headcount:     150,
		SLAAchieved:   0.998,
		TurnoverRate:  0.004,
	})
	w := testutil.DoRequest(r, http.MethodPost, "/api/upload", body, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("不带id上传失败: %d %s", w.Code, w.Body.String())
	}
	var metric entity.WeeklyMetric
	db.First(&metric, "project_code = ? AND report_week = ?", "Project_Gemma", "2023-10-30")
	if metric.ID == "" || len(metric.ID) > 32 {
		t.Errorf("生成的指标ID超出主键列宽: %q (len=%d)", metric.ID, len(metric.ID))
	}

	w = testutil.DoRequest(r, http.MethodPost, "/api/pms",
		entity.PMProfile{Name: "赵敏 (Mina)", Level: "项目经理"}, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("不带id新增档案失败: %d %s", w.Code, w.Body.String())
	}
	var pm entity.PMProfile
	db.First(&pm, "name = ?", "赵敏 (Mina)")
	if pm.ID == "" || len(pm.ID) > 32 {
		t.Errorf("生成的档案ID超出主键列宽: %q (len=%d)", pm.ID, len(pm.ID))
	}

	w = testutil.DoRequest(r, http.MethodPost, "/api/projects", entity.Project{
		ProjectName:  "平安保险外呼",
		ProjectCode:  "Project_Kilo",
		BusinessType: entity.BusinessTypeBPO,
		Status:       entity.ProjectStatusRampUp,
	}, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("不带id新增项目失败: %d %s", w.Code, w.Body.String())
	}
	var project entity.Project
	db.First(&project, "project_code = ?", "Project_Kilo")
	if project.ID == "" || len(project.ID) > 32 {
		t.Errorf("生成的项目ID超出主键列宽: %q (len=%d)", project.ID, len(project.ID))
	}

	w = testutil.DoRequest(r, http.MethodPost, "/api/users", entity.User{
		Username: "ops", Name: "Olivia Ops", Role: entity.RolePM,
	}, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("不带id新增用户失败: %d %s", w.Code, w.Body.String())
	}
	var user entity.User
	db.First(&user, "username = ?", "ops")
	if user.ID == "" || len(user.ID) > 32 {
		t.Errorf("生成的用户ID超出主键列宽: %q (len=%d)", user.ID, len(user.ID))
	}
}

func TestPMCreateIsIdempotentByID(t *testing.T) {
	r, db := setupMetricTest(t)

	pm := entity.PMProfile{ID: "pm-9", Name: "李强 (Leo)", Level: "项目经理"}
	w := testutil.DoRequest(r, http.MethodPost, "/api/pms", pm, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("新增失败: %d %s", w.Code, w.Body.String())
	}

	pm.Level = "高级项目经理"
	w = testutil.DoRequest(r, http.MethodPost, "/api/pms", pm, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("重复新增失败: %d %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&entity.PMProfile{}).Count(&count)
	if count != 4 {
		t.Errorf("同ID重复提交不应增加数量, 应为4, 实际%d", count)
	}
	var saved entity.PMProfile
	db.First(&saved, "id = ?", "pm-9")
	if saved.Level != "高级项目经理" {
		t.Errorf("重复提交应整条替换: %s", saved.Level)
	}
}

func TestPMDelete(t *testing.T) {
	r, db := setupMetricTest(t)

	w := testutil.DoRequest(r, http.MethodDelete, "/api/pms/pm-2", nil, testutil.DirectorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("删除失败: %d %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&entity.PMProfile{}).Count(&count)
	if count != 2 {
		t.Errorf("删除后应剩2条, 实际%d", count)
	}
}
