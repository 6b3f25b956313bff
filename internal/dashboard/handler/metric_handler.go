package handler

import (
	"net/http"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/service"
	"github.com/gin-gonic/gin"
)

// MetricHandler 指标上传处理器
type MetricHandler struct {
	svc *service.MetricService
}

func NewMetricHandler(svc *service.MetricService) *MetricHandler {
	return &MetricHandler{svc: svc}
}

// Upload 批量上传周度指标
// POST /api/upload
func (h *MetricHandler) Upload(c *gin.Context) {
	var req struct {
		Metrics []entity.WeeklyMetric `json:"metrics" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	count, err := h.svc.Upload(c.Request.Context(), req.Metrics)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}
