package api

import (
	"monviso/database"
	"monviso/middleware"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler 用户信息处理器
type ProfileHandler struct{}

// NewProfileHandler 创建用户信息处理器
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Get 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.Profile} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := service.NewProfileService(database.DB).Get(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err, "获取用户信息失败")
		return
	}
	Success(c, profile)
}
