package service

import (
	"context"
	"fmt"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
	"github.com/google/uuid"
)

// ProjectService 项目服务
type ProjectService struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// Save 新增或整条替换项目
// 同ID覆盖（add与update行为合并，沿用既有约定）
func (s *ProjectService) Save(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	if project.ProjectCode == "" {
		return nil, fmt.Errorf("projectCode is required")
	}
	if project.ID == "" {
		project.ID = uuid.New().String()[:32]
	}
	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return project, nil
}

// Delete 删除项目
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}
