package entity

// TransformationTask 数字化转型任务（看板）
type TransformationTask struct {
	ID              string `json:"id" gorm:"primaryKey;size:32"`
	TaskName        string `json:"taskName" gorm:"size:128;not null"`
	Stage           string `json:"stage" gorm:"size:16;not null;default:Backlog"`
	ProgressPercent int    `json:"progressPercent" gorm:"not null;default:0"`
	BlockerNotes    string `json:"blockerNotes,omitempty" gorm:"type:text"`
}

func (TransformationTask) TableName() string {
	return "transformation_tasks"
}

// TaskStage 看板阶段
// Blocked 与 Testing 为并行分支，相互之间无先后顺序
const (
	TaskStageBacklog    = "Backlog"
	TaskStageInProgress = "In Progress"
	TaskStageBlocked    = "Blocked"
	TaskStageTesting    = "Testing"
	TaskStageLive       = "Live"
)
