package repository

import (
	"context"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"gorm.io/gorm"
)

// PMRepository 项目经理档案仓库
type PMRepository struct {
	db *gorm.DB
}

func NewPMRepository(db *gorm.DB) *PMRepository {
	return &PMRepository{db: db}
}

// FindAll 查询全部档案
func (r *PMRepository) FindAll(ctx context.Context) ([]entity.PMProfile, error) {
	var pms []entity.PMProfile
	err := r.db.WithContext(ctx).Order("id").Find(&pms).Error
	return pms, err
}

// Save 保存档案，同ID覆盖
func (r *PMRepository) Save(ctx context.Context, pm *entity.PMProfile) error {
	return r.db.WithContext(ctx).Save(pm).Error
}

// Delete 删除档案
func (r *PMRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.PMProfile{}, "id = ?", id).Error
}
