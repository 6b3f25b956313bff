package service

import (
	"context"
	"fmt"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
	"github.com/google/uuid"
)

// PMService 项目经理档案服务
type PMService struct {
	pmRepo *repository.PMRepository
}

func NewPMService(pmRepo *repository.PMRepository) *PMService {
	return &PMService{pmRepo: pmRepo}
}

// Save 新增或整条替换档案，同ID覆盖
func (s *PMService) Save(ctx context.Context, pm *entity.PMProfile) (*entity.PMProfile, error) {
	if pm.Name == "" {
		return nil, fmt.Errorf("pm name is required")
	}
	if pm.ID == "" {
		pm.ID = uuid.New().String()[:32]
	}
	if err := s.pmRepo.Save(ctx, pm); err != nil {
		return nil, fmt.Errorf("save pm: %w", err)
	}
	return pm, nil
}

// Delete 删除档案
func (s *PMService) Delete(ctx context.Context, id string) error {
	return s.pmRepo.Delete(ctx, id)
}
