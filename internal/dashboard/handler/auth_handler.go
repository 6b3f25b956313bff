package handler

import (
	"errors"
	"net/http"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login 用户登录
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			Unauthorized(c, "用户不存在")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout 用户登出
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), GetUserID(c)); err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
