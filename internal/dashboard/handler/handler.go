package handler

import (
	"net/http"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/service"
	"github.com/gin-gonic/gin"
)

// Handlers 处理器集合
type Handlers struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Metric    *MetricHandler
	User      *UserHandler
	Project   *ProjectHandler
	PM        *PMHandler
	Config    *ConfigHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(services.Auth),
		Dashboard: NewDashboardHandler(services.Dashboard),
		Metric:    NewMetricHandler(services.Metric),
		User:      NewUserHandler(services.User),
		Project:   NewProjectHandler(services.Project),
		PM:        NewPMHandler(services.PM),
		Config:    NewConfigHandler(services.Config),
	}
}

// === 响应辅助函数 ===
// 成功载荷直接按接口约定返回；错误统一 {"error": message}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetAssignedCodes 取当前用户可见项目代号
func GetAssignedCodes(c *gin.Context) []string {
	codes, _ := c.Get("assigned_codes")
	if v, ok := codes.([]string); ok {
		return v
	}
	return nil
}
