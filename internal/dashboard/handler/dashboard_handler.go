package handler

import (
	"net/http"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler 看板处理器
type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetDashboard 看板聚合数据
// GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	role := c.GetString("role")
	codes := GetAssignedCodes(c)

	bundle, err := h.svc.GetBundle(c.Request.Context(), role, codes)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, bundle)
}
