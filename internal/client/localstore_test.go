package client

import (
	"testing"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := OpenInMemory()
	if err != nil {
		t.Fatalf("打开内存存储失败: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSeedsOnFirstOpen(t *testing.T) {
	store := newTestStore(t)

	projects, err := store.Projects()
	if err != nil {
		t.Fatalf("读取项目失败: %v", err)
	}
	if len(projects) != 4 {
		t.Errorf("种子项目数应为4, 实际%d", len(projects))
	}

	users, err := store.Users()
	if err != nil {
		t.Fatalf("读取用户失败: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("种子用户数应为2, 实际%d", len(users))
	}

	cfg, err := store.Config()
	if err != nil {
		t.Fatalf("读取配置失败: %v", err)
	}
	if cfg.RiskThresholds.RevenueGap != 0.05 {
		t.Errorf("营收缺口阈值应为0.05, 实际%v", cfg.RiskThresholds.RevenueGap)
	}
}

func TestSaveMetricsReplacesByProjectCode(t *testing.T) {
	store := newTestStore(t)

	// 种子里 Project_Alpha 已有 2023-10-23 一条记录；
	// 新批次只含 Project_Alpha 的另一周，应把该项目既有记录全部顶掉
	batch := []entity.WeeklyMetric{
		{
			ID:            "met-new",
			ProjectCode:   "Project_Alpha",
			ReportWeek:    "2023-10-30",
			RevenueActual: 52000,
			RevenueTarget: 50000,
			Headcount:     118,
			SLAAchieved:   0.97,
			TurnoverRate:  0.015,
		},
	}
	if err := store.SaveMetrics(batch); err != nil {
		t.Fatalf("保存指标失败: %v", err)
	}

	metrics, err := store.Metrics()
	if err != nil {
		t.Fatalf("读取指标失败: %v", err)
	}

	alpha := 0
	others := 0
	for _, m := range metrics {
		if m.ProjectCode == "Project_Alpha" {
			alpha++
			if m.ReportWeek != "2023-10-30" {
				t.Errorf("Project_Alpha 旧记录未被替换: %s", m.ReportWeek)
			}
		} else {
			others++
		}
	}
	if alpha != 1 {
		t.Errorf("Project_Alpha 应只剩批次内1条, 实际%d", alpha)
	}
	if others != 3 {
		t.Errorf("其他项目记录不应受影响, 应为3条, 实际%d", others)
	}
}

func TestSaveMetricsLeavesUntouchedProjects(t *testing.T) {
	store := newTestStore(t)

	batch := []entity.WeeklyMetric{
		{ID: "m-t1", ProjectCode: "Project_Tango", ReportWeek: "2023-10-30", RevenueActual: 16000, RevenueTarget: 15000},
		{ID: "m-t2", ProjectCode: "Project_Tango", ReportWeek: "2023-11-06", RevenueActual: 15800, RevenueTarget: 15000},
	}
	if err := store.SaveMetrics(batch); err != nil {
		t.Fatalf("保存指标失败: %v", err)
	}

	metrics, _ := store.Metrics()
	byCode := map[string]int{}
	for _, m := range metrics {
		byCode[m.ProjectCode]++
	}
	if byCode["Project_Tango"] != 2 {
		t.Errorf("Project_Tango 应为批次内2条, 实际%d", byCode["Project_Tango"])
	}
	if byCode["Project_Alpha"] != 1 || byCode["Project_Sierra"] != 1 || byCode["Project_Gemma"] != 1 {
		t.Errorf("未覆盖项目的记录数不应变化: %v", byCode)
	}
}

func TestAddPMIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	pm := entity.PMProfile{ID: "pm-9", Name: "李强 (Leo)", Level: "项目经理"}
	if err := store.AddPM(pm); err != nil {
		t.Fatalf("新增档案失败: %v", err)
	}
	// 同ID重复提交不增加数量
	pm.Level = "高级项目经理"
	if err := store.AddPM(pm); err != nil {
		t.Fatalf("重复新增失败: %v", err)
	}

	pms, err := store.PMs()
	if err != nil {
		t.Fatalf("读取档案失败: %v", err)
	}
	if len(pms) != 4 {
		t.Errorf("档案数应为4, 实际%d", len(pms))
	}
	for _, p := range pms {
		if p.ID == "pm-9" && p.Level != "高级项目经理" {
			t.Errorf("重复提交应整条替换, 级别仍为%s", p.Level)
		}
	}
}

func TestPMUpdateAndDelete(t *testing.T) {
	store := newTestStore(t)

	// 更新不存在的ID不产生任何变化
	if err := store.UpdatePM(entity.PMProfile{ID: "pm-missing", Name: "幽灵"}); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	pms, _ := store.PMs()
	if len(pms) != 3 {
		t.Errorf("更新缺失ID后档案数应不变, 实际%d", len(pms))
	}

	updated := pms[0]
	updated.Level = "业务总监"
	if err := store.UpdatePM(updated); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	pms, _ = store.PMs()
	if pms[0].Level != "业务总监" {
		t.Errorf("更新未生效: %s", pms[0].Level)
	}

	if err := store.DeletePM(updated.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	pms, _ = store.PMs()
	if len(pms) != 2 {
		t.Errorf("删除后档案数应为2, 实际%d", len(pms))
	}
}

func TestBundleScopesPMRole(t *testing.T) {
	store := newTestStore(t)

	bundle, err := store.Bundle(entity.RolePM, []string{"Project_Alpha", "Project_Sierra"})
	if err != nil {
		t.Fatalf("组装聚合数据失败: %v", err)
	}
	if len(bundle.Projects) != 2 {
		t.Errorf("PM角色应只见2个授权项目, 实际%d", len(bundle.Projects))
	}
	for _, p := range bundle.Projects {
		if p.ProjectCode != "Project_Alpha" && p.ProjectCode != "Project_Sierra" {
			t.Errorf("越权项目出现在聚合数据中: %s", p.ProjectCode)
		}
	}
	for _, m := range bundle.Metrics {
		if m.ProjectCode != "Project_Alpha" && m.ProjectCode != "Project_Sierra" {
			t.Errorf("越权指标出现在聚合数据中: %s", m.ProjectCode)
		}
	}
	// 档案与任务不做过滤
	if len(bundle.PMs) != 3 || len(bundle.Tasks) != 4 {
		t.Errorf("档案与任务应完整返回: pms=%d tasks=%d", len(bundle.PMs), len(bundle.Tasks))
	}

	full, err := store.Bundle(entity.RoleDirector, nil)
	if err != nil {
		t.Fatalf("组装聚合数据失败: %v", err)
	}
	if len(full.Projects) != 4 || len(full.Metrics) != 4 {
		t.Errorf("总监角色应见全量数据: projects=%d metrics=%d", len(full.Projects), len(full.Metrics))
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)

	sess, err := store.SavedSession()
	if err != nil {
		t.Fatalf("读取会话失败: %v", err)
	}
	if sess != nil {
		t.Fatal("初始状态不应有会话")
	}

	user := seedDirector(t, store)
	if err := store.SaveSession(&Session{User: user, Token: "tok", Offline: true}); err != nil {
		t.Fatalf("保存会话失败: %v", err)
	}

	sess, err = store.SavedSession()
	if err != nil {
		t.Fatalf("读取会话失败: %v", err)
	}
	if sess == nil || sess.User == nil || sess.User.Username != "director" || !sess.Offline {
		t.Errorf("会话内容不符: %+v", sess)
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("清除会话失败: %v", err)
	}
	sess, _ = store.SavedSession()
	if sess != nil {
		t.Error("清除后不应再有会话")
	}
}

func seedDirector(t *testing.T, store *LocalStore) *entity.User {
	t.Helper()
	user, err := store.FindUserByUsername("director")
	if err != nil {
		t.Fatalf("查找用户失败: %v", err)
	}
	if user == nil {
		t.Fatal("种子里应存在 director 用户")
	}
	return user
}
