package api

import (
	"monviso/database"
	"monviso/middleware"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// SavingsGoalHandler 储蓄目标处理器
type SavingsGoalHandler struct{}

// NewSavingsGoalHandler 创建储蓄目标处理器
func NewSavingsGoalHandler() *SavingsGoalHandler {
	return &SavingsGoalHandler{}
}

func (h *SavingsGoalHandler) service() *service.SavingsGoalService {
	return service.NewSavingsGoalService(database.DB)
}

// List 获取储蓄目标列表
// @Summary 获取储蓄目标列表
// @Tags 储蓄目标
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]service.GoalWithProgress} "获取成功"
// @Router /api/savings-goals [get]
func (h *SavingsGoalHandler) List(c *gin.Context) {
	list, err := h.service().List(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, list)
}

// Create 创建储蓄目标
// @Summary 创建储蓄目标
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.SavingsGoalInput true "储蓄目标信息"
// @Success 200 {object} Response{data=service.GoalWithProgress} "创建成功"
// @Failure 400 {object} Response "参数校验失败"
// @Router /api/savings-goals [post]
func (h *SavingsGoalHandler) Create(c *gin.Context) {
	var req service.SavingsGoalInput
	if !bindJSON(c, &req) {
		return
	}
	goal, err := h.service().Create(c.Request.Context(), middleware.GetCurrentUserID(c), req)
	if err != nil {
		respondError(c, err, "创建储蓄目标失败")
		return
	}
	SuccessWithMessage(c, "创建成功", goal)
}

// Get 获取储蓄目标
// @Summary 获取储蓄目标
// @Tags 储蓄目标
// @Produce json
// @Security BearerAuth
// @Param id path int true "储蓄目标ID"
// @Success 200 {object} Response{data=service.GoalWithProgress} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/savings-goals/{id} [get]
func (h *SavingsGoalHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	goal, err := h.service().Get(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, goal)
}

// Update 更新储蓄目标
// @Summary 更新储蓄目标
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "储蓄目标ID"
// @Param request body service.SavingsGoalInput true "储蓄目标信息"
// @Success 200 {object} Response{data=service.GoalWithProgress} "更新成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/savings-goals/{id} [put]
func (h *SavingsGoalHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.SavingsGoalInput
	if !bindJSON(c, &req) {
		return
	}
	goal, err := h.service().Update(c.Request.Context(), middleware.GetCurrentUserID(c), id, req)
	if err != nil {
		respondError(c, err, "更新储蓄目标失败")
		return
	}
	SuccessWithMessage(c, "更新成功", goal)
}

// Delete 删除储蓄目标
// @Summary 删除储蓄目标
// @Tags 储蓄目标
// @Produce json
// @Security BearerAuth
// @Param id path int true "储蓄目标ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/savings-goals/{id} [delete]
func (h *SavingsGoalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service().Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		respondError(c, err, "删除储蓄目标失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
