// Package seed 提供首次运行时的演示数据集
// 服务端建库和客户端本地存储共用同一份种子数据
package seed

import (
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
)

// Users 初始用户
func Users() []entity.User {
	return []entity.User{
		{
			ID:        "u1",
			Username:  "director",
			Name:      "Alex Director",
			Role:      entity.RoleDirector,
			AvatarURL: "https://ui-avatars.com/api/?name=Alex+Director&background=0D8ABC&color=fff",
		},
		{
			ID:                   "u2",
			Username:             "pm",
			Name:                 "Sarah PM",
			Role:                 entity.RolePM,
			AvatarURL:            "https://ui-avatars.com/api/?name=Sarah+PM&background=6366f1&color=fff",
			AssignedProjectCodes: entity.StringArray{"Project_Alpha", "Project_Sierra"},
		},
	}
}

// PMs 初始项目经理档案
func PMs() []entity.PMProfile {
	return []entity.PMProfile{
		{ID: "pm-1", Name: "王莎拉 (Sarah)", Level: "高级项目经理", Tags: entity.StringArray{"运营强", "危机管理"}, AvatarURL: "https://picsum.photos/100/100?random=1"},
		{ID: "pm-2", Name: "张伟 (John)", Level: "初级项目经理", Tags: entity.StringArray{"技术控", "沟通较弱"}, AvatarURL: "https://picsum.photos/100/100?random=2"},
		{ID: "pm-3", Name: "陈艾米 (Emily)", Level: "业务总监", Tags: entity.StringArray{"战略思维", "创新领头人"}, AvatarURL: "https://picsum.photos/100/100?random=3"},
	}
}

// Projects 初始项目
func Projects() []entity.Project {
	return []entity.Project{
		{
			ID:               "proj-1",
			ProjectName:      "招商银行 BPO",
			ProjectCode:      "Project_Alpha",
			BusinessType:     entity.BusinessTypeBPO,
			PMID:             "pm-1",
			ProfitTargetRate: 0.20,
			SLATargetRate:    0.95,
			Status:           entity.ProjectStatusRunning,
		},
		{
			ID:               "proj-2",
			ProjectName:      "特斯拉客服支持",
			ProjectCode:      "Project_Tango",
			BusinessType:     entity.BusinessTypeRPO,
			PMID:             "pm-2",
			ProfitTargetRate: 0.15,
			SLATargetRate:    0.98,
			Status:           entity.ProjectStatusRampUp,
		},
		{
			ID:               "proj-3",
			ProjectName:      "Shopee 物流客服",
			ProjectCode:      "Project_Sierra",
			BusinessType:     entity.BusinessTypeBPO,
			PMID:             "pm-1",
			ProfitTargetRate: 0.10,
			SLATargetRate:    0.99,
			Status:           entity.ProjectStatusRunning,
		},
		{
			ID:               "proj-4",
			ProjectName:      "字节跳动内容审核",
			ProjectCode:      "Project_Gemma",
			BusinessType:     entity.BusinessTypeHRO,
			PMID:             "pm-3",
			ProfitTargetRate: 0.25,
			SLATargetRate:    0.995,
			Status:           entity.ProjectStatusRunning,
		},
	}
}

// Metrics 初始周度指标
func Metrics() []entity.WeeklyMetric {
	return []entity.WeeklyMetric{
		{
			ID:            "met-1",
			ProjectCode:   "Project_Alpha",
			ReportWeek:    "2023-10-23",
			RevenueActual: 45000,
			RevenueTarget: 50000, // 差10%，触发营收风险
			Headcount:     120,
			SLAAchieved:   0.96,
			TurnoverRate:  0.02,
			RiskFlag:      false,
			RiskDetails:   "因呼入量低于预测，导致营收未达标。",
		},
		{
			ID:            "met-2",
			ProjectCode:   "Project_Tango",
			ReportWeek:    "2023-10-23",
			RevenueActual: 15500,
			RevenueTarget: 15000,
			Headcount:     45,
			SLAAchieved:   0.92, // 低于目标0.98
			TurnoverRate:  0.05,
			RiskFlag:      true,
			RiskDetails:   "关键系统宕机导致 SLA 违规。",
		},
		{
			ID:            "met-3",
			ProjectCode:   "Project_Sierra",
			ReportWeek:    "2023-10-23",
			RevenueActual: 82000,
			RevenueTarget: 80000,
			Headcount:     300,
			SLAAchieved:   0.992,
			TurnoverRate:  0.01,
		},
		{
			ID:            "met-4",
			ProjectCode:   "Project_Gemma",
			ReportWeek:    "2023-10-23",
			RevenueActual: 120000,
			RevenueTarget: 120000,
			Headcount:     150,
			SLAAchieved:   0.999,
			TurnoverRate:  0.005,
			RiskFlag:      true, // 手工标记
			RiskDetails:   "客户潜在政策变更风险。",
		},
	}
}

// Tasks 初始转型任务
func Tasks() []entity.TransformationTask {
	return []entity.TransformationTask{
		{ID: "task-1", TaskName: "财务 RPA 机器人", Stage: entity.TaskStageTesting, ProgressPercent: 90},
		{ID: "task-2", TaskName: "智能质检系统", Stage: entity.TaskStageInProgress, ProgressPercent: 45},
		{ID: "task-3", TaskName: "新 HR 门户上线", Stage: entity.TaskStageBlocked, ProgressPercent: 20, BlockerNotes: "等待 IT 安全审批"},
		{ID: "task-4", TaskName: "语音 AI 客服试点", Stage: entity.TaskStageBacklog, ProgressPercent: 0},
	}
}

// Config 初始系统配置
func Config() entity.SystemConfig {
	return entity.SystemConfig{
		ID: entity.SystemConfigID,
		RiskThresholds: entity.RiskThresholds{
			RevenueGap:   0.05,
			TurnoverRate: 0.10,
		},
		Resources: entity.ResourceLinks{
			TemplateURL: "https://example.com/templates/weekly_report_v2.xlsx",
			GuideURL:    "https://example.com/docs/director_os_handbook.pdf",
		},
		MaintenanceMode: false,
	}
}
