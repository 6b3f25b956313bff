package handler

import (
	"net/http"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/service"
	"github.com/gin-gonic/gin"
)

// PMHandler 项目经理档案处理器
type PMHandler struct {
	svc *service.PMService
}

func NewPMHandler(svc *service.PMService) *PMHandler {
	return &PMHandler{svc: svc}
}

// CreatePM 新增档案（同ID覆盖）
// POST /api/pms
func (h *PMHandler) CreatePM(c *gin.Context) {
	var pm entity.PMProfile
	if err := c.ShouldBindJSON(&pm); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	saved, err := h.svc.Save(c.Request.Context(), &pm)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, saved)
}

// UpdatePM 整条替换档案
// PUT /api/pms/:id
func (h *PMHandler) UpdatePM(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "PM ID is required")
		return
	}

	var pm entity.PMProfile
	if err := c.ShouldBindJSON(&pm); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	pm.ID = id

	saved, err := h.svc.Save(c.Request.Context(), &pm)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeletePM 删除档案
// DELETE /api/pms/:id
func (h *PMHandler) DeletePM(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "PM ID is required")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
