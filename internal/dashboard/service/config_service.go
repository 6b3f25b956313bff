package service

import (
	"context"
	"fmt"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
)

// ConfigService 系统配置服务
type ConfigService struct {
	configRepo *repository.ConfigRepository
}

func NewConfigService(configRepo *repository.ConfigRepository) *ConfigService {
	return &ConfigService{configRepo: configRepo}
}

// Get 读取全局配置
func (s *ConfigService) Get(ctx context.Context) (*entity.SystemConfig, error) {
	return s.configRepo.Get(ctx)
}

// Update 整条替换全局配置
func (s *ConfigService) Update(ctx context.Context, cfg *entity.SystemConfig) (*entity.SystemConfig, error) {
	if cfg.RiskThresholds.RevenueGap < 0 || cfg.RiskThresholds.TurnoverRate < 0 {
		return nil, fmt.Errorf("risk thresholds must be non-negative")
	}
	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}
	return cfg, nil
}
