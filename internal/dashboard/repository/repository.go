package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories 仓库集合
type Repositories struct {
	User    *UserRepository
	Project *ProjectRepository
	Metric  *MetricRepository
	PM      *PMRepository
	Task    *TaskRepository
	Config  *ConfigRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Project: NewProjectRepository(db),
		Metric:  NewMetricRepository(db),
		PM:      NewPMRepository(db),
		Task:    NewTaskRepository(db),
		Config:  NewConfigRepository(db),
	}
}
