package api

import (
	"monviso/database"
	"monviso/middleware"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler 引导流程处理器
type OnboardingHandler struct{}

// NewOnboardingHandler 创建引导流程处理器
func NewOnboardingHandler() *OnboardingHandler {
	return &OnboardingHandler{}
}

// Complete 提交引导数据
// @Summary 提交引导数据
// @Description 一次性写入姓名、财务档案、收入、固定/可变支出与储蓄目标，任一项失败则全部不写入
// @Tags 引导
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.OnboardingInput true "引导数据"
// @Success 200 {object} Response{data=service.OnboardingResult} "引导完成"
// @Failure 400 {object} Response{data=map[string]string} "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Router /api/onboarding [post]
func (h *OnboardingHandler) Complete(c *gin.Context) {
	var req service.OnboardingInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := service.NewOnboardingService(database.DB).Complete(c.Request.Context(), middleware.GetCurrentUserID(c), req)
	if err != nil {
		respondError(c, err, "保存引导数据失败")
		return
	}

	SuccessWithMessage(c, "引导完成", result)
}

// Status 引导状态
// @Summary 引导状态
// @Tags 引导
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.OnboardingStatus} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/onboarding/status [get]
func (h *OnboardingHandler) Status(c *gin.Context) {
	status, err := service.NewOnboardingService(database.DB).Status(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err, "获取引导状态失败")
		return
	}
	Success(c, status)
}
