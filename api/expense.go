package api

import (
	"monviso/database"
	"monviso/middleware"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 预算支出处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建预算支出处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

func (h *ExpenseHandler) service() *service.ExpenseService {
	return service.NewExpenseService(database.DB)
}

// List 获取支出列表
// @Summary 获取支出列表
// @Tags 支出
// @Produce json
// @Security BearerAuth
// @Param type query string false "fixed / variable"
// @Success 200 {object} Response{data=[]models.Expense} "获取成功"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	list, err := h.service().List(c.Request.Context(), middleware.GetCurrentUserID(c), c.Query("type"))
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, list)
}

// Create 创建支出
// @Summary 创建支出
// @Tags 支出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ExpenseInput true "支出信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "参数校验失败"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req service.ExpenseInput
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.service().Create(c.Request.Context(), middleware.GetCurrentUserID(c), req)
	if err != nil {
		respondError(c, err, "创建支出失败")
		return
	}
	SuccessWithMessage(c, "创建成功", expense)
}

// Get 获取支出
// @Summary 获取支出
// @Tags 支出
// @Produce json
// @Security BearerAuth
// @Param id path int true "支出ID"
// @Success 200 {object} Response{data=models.Expense} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	expense, err := h.service().Get(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, expense)
}

// Update 更新支出
// @Summary 更新支出
// @Tags 支出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "支出ID"
// @Param request body service.ExpenseInput true "支出信息"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.ExpenseInput
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.service().Update(c.Request.Context(), middleware.GetCurrentUserID(c), id, req)
	if err != nil {
		respondError(c, err, "更新支出失败")
		return
	}
	SuccessWithMessage(c, "更新成功", expense)
}

// Delete 删除支出
// @Summary 删除支出
// @Tags 支出
// @Produce json
// @Security BearerAuth
// @Param id path int true "支出ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service().Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		respondError(c, err, "删除支出失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
