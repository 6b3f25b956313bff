package repository

import (
	"context"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"gorm.io/gorm"
)

// TaskRepository 转型任务仓库
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FindAll 查询全部任务
func (r *TaskRepository) FindAll(ctx context.Context) ([]entity.TransformationTask, error) {
	var tasks []entity.TransformationTask
	err := r.db.WithContext(ctx).Order("id").Find(&tasks).Error
	return tasks, err
}

// Save 保存任务，同ID覆盖
func (r *TaskRepository) Save(ctx context.Context, task *entity.TransformationTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete 删除任务
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.TransformationTask{}, "id = ?", id).Error
}
