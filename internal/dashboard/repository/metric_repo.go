package repository

import (
	"context"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetricRepository 周度指标仓库
type MetricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

// FindAll 查询全部指标
func (r *MetricRepository) FindAll(ctx context.Context) ([]entity.WeeklyMetric, error) {
	var metrics []entity.WeeklyMetric
	err := r.db.WithContext(ctx).Order("report_week, project_code").Find(&metrics).Error
	return metrics, err
}

// FindByCodes 按项目代号集合查询
func (r *MetricRepository) FindByCodes(ctx context.Context, codes []string) ([]entity.WeeklyMetric, error) {
	var metrics []entity.WeeklyMetric
	err := r.db.WithContext(ctx).
		Where("project_code IN ?", codes).
		Order("report_week, project_code").
		Find(&metrics).Error
	return metrics, err
}

// ReplaceBatch 批量写入指标
// 同 (project_code, report_week) 的记录整条覆盖，其余追加
func (r *MetricRepository) ReplaceBatch(ctx context.Context, metrics []entity.WeeklyMetric) error {
	if len(metrics) == 0 {
		return nil
	}
	for i := range metrics {
		if metrics[i].ID == "" {
			// 截断到主键列宽
			metrics[i].ID = uuid.New().String()[:32]
		}
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_code"}, {Name: "report_week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"revenue_actual", "revenue_target", "headcount",
			"sla_achieved", "turnover_rate", "risk_flag", "risk_details",
		}),
	}).Create(&metrics).Error
}
