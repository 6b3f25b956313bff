package repository

import (
	"context"
	"errors"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"gorm.io/gorm"
)

// ConfigRepository 系统配置仓库（单例记录）
type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// Get 读取全局配置
func (r *ConfigRepository) Get(ctx context.Context) (*entity.SystemConfig, error) {
	var cfg entity.SystemConfig
	err := r.db.WithContext(ctx).Where("id = ?", entity.SystemConfigID).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// Save 整条替换全局配置
func (r *ConfigRepository) Save(ctx context.Context, cfg *entity.SystemConfig) error {
	cfg.ID = entity.SystemConfigID
	return r.db.WithContext(ctx).Save(cfg).Error
}
