package repository

import (
	"context"
	"errors"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"gorm.io/gorm"
)

// ProjectRepository 项目仓库
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll 查询全部项目
func (r *ProjectRepository) FindAll(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	err := r.db.WithContext(ctx).Order("id").Find(&projects).Error
	return projects, err
}

// FindByCodes 按项目代号集合查询（PM数据范围限制用）
func (r *ProjectRepository) FindByCodes(ctx context.Context, codes []string) ([]entity.Project, error) {
	var projects []entity.Project
	err := r.db.WithContext(ctx).Where("project_code IN ?", codes).Order("id").Find(&projects).Error
	return projects, err
}

// FindByID 按ID查找项目
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Save 保存项目，同ID覆盖
func (r *ProjectRepository) Save(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete 删除项目
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Project{}, "id = ?", id).Error
}
