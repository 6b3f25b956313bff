package service

import (
	"context"
	"fmt"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
)

// MetricService 周度指标服务
type MetricService struct {
	metricRepo *repository.MetricRepository
}

func NewMetricService(metricRepo *repository.MetricRepository) *MetricService {
	return &MetricService{metricRepo: metricRepo}
}

// Upload 批量上传指标
// 同 (projectCode, reportWeek) 覆盖旧记录，返回处理条数
func (s *MetricService) Upload(ctx context.Context, metrics []entity.WeeklyMetric) (int, error) {
	for _, m := range metrics {
		if m.ProjectCode == "" {
			return 0, fmt.Errorf("metric missing projectCode")
		}
		if m.ReportWeek == "" {
			return 0, fmt.Errorf("metric for %s missing reportWeek", m.ProjectCode)
		}
		if m.RevenueActual < 0 || m.RevenueTarget < 0 {
			return 0, fmt.Errorf("metric for %s has negative revenue", m.ProjectCode)
		}
		if m.Headcount < 0 {
			return 0, fmt.Errorf("metric for %s has negative headcount", m.ProjectCode)
		}
	}

	if err := s.metricRepo.ReplaceBatch(ctx, metrics); err != nil {
		return 0, fmt.Errorf("replace metrics: %w", err)
	}
	return len(metrics), nil
}
