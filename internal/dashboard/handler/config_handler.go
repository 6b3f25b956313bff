package handler

import (
	"net/http"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/service"
	"github.com/gin-gonic/gin"
)

// ConfigHandler 系统配置处理器
type ConfigHandler struct {
	svc *service.ConfigService
}

func NewConfigHandler(svc *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

// UpdateConfig 整条替换全局配置
// PUT /api/config
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var cfg entity.SystemConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	saved, err := h.svc.Update(c.Request.Context(), &cfg)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, saved)
}
