package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
)

// DashboardService 看板聚合服务
type DashboardService struct {
	repos *repository.Repositories
}

func NewDashboardService(repos *repository.Repositories) *DashboardService {
	return &DashboardService{repos: repos}
}

// GetBundle 拉取看板全量数据
// PM角色按 assignedCodes 过滤项目和指标；DIRECTOR看全部
func (s *DashboardService) GetBundle(ctx context.Context, role string, assignedCodes []string) (*entity.DashboardBundle, error) {
	var (
		projects []entity.Project
		metrics  []entity.WeeklyMetric
		err      error
	)

	if role == entity.RolePM && len(assignedCodes) > 0 {
		projects, err = s.repos.Project.FindByCodes(ctx, assignedCodes)
		if err != nil {
			return nil, fmt.Errorf("load projects: %w", err)
		}
		metrics, err = s.repos.Metric.FindByCodes(ctx, assignedCodes)
		if err != nil {
			return nil, fmt.Errorf("load metrics: %w", err)
		}
	} else {
		projects, err = s.repos.Project.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("load projects: %w", err)
		}
		metrics, err = s.repos.Metric.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("load metrics: %w", err)
		}
	}

	pms, err := s.repos.PM.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pms: %w", err)
	}
	tasks, err := s.repos.Task.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	cfg, err := s.repos.Config.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = &entity.SystemConfig{ID: entity.SystemConfigID}
	}

	return &entity.DashboardBundle{
		Projects: projects,
		Metrics:  metrics,
		PMs:      pms,
		Tasks:    tasks,
		Config:   *cfg,
	}, nil
}
