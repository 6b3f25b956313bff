package service

import (
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/config"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
	"github.com/redis/go-redis/v9"
)

// Services 服务集合
type Services struct {
	Auth      *AuthService
	Dashboard *DashboardService
	Metric    *MetricService
	Project   *ProjectService
	PM        *PMService
	User      *UserService
	Config    *ConfigService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.User, rdb, cfg),
		Dashboard: NewDashboardService(repos),
		Metric:    NewMetricService(repos.Metric),
		Project:   NewProjectService(repos.Project),
		PM:        NewPMService(repos.PM),
		User:      NewUserService(repos.User),
		Config:    NewConfigService(repos.Config),
	}
}
