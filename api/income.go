package api

import (
	"monviso/database"
	"monviso/middleware"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入来源处理器
type IncomeHandler struct{}

// NewIncomeHandler 创建收入来源处理器
func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

func (h *IncomeHandler) service() *service.IncomeService {
	return service.NewIncomeService(database.DB)
}

// List 获取收入列表
// @Summary 获取收入列表
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Income} "获取成功"
// @Router /api/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	list, err := h.service().List(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, list)
}

// Create 创建收入
// @Summary 创建收入
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.IncomeInput true "收入信息"
// @Success 200 {object} Response{data=models.Income} "创建成功"
// @Failure 400 {object} Response "参数校验失败"
// @Router /api/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req service.IncomeInput
	if !bindJSON(c, &req) {
		return
	}
	income, err := h.service().Create(c.Request.Context(), middleware.GetCurrentUserID(c), req)
	if err != nil {
		respondError(c, err, "创建收入失败")
		return
	}
	SuccessWithMessage(c, "创建成功", income)
}

// Get 获取收入
// @Summary 获取收入
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入ID"
// @Success 200 {object} Response{data=models.Income} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/incomes/{id} [get]
func (h *IncomeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	income, err := h.service().Get(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, income)
}

// Update 更新收入
// @Summary 更新收入
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入ID"
// @Param request body service.IncomeInput true "收入信息"
// @Success 200 {object} Response{data=models.Income} "更新成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/incomes/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.IncomeInput
	if !bindJSON(c, &req) {
		return
	}
	income, err := h.service().Update(c.Request.Context(), middleware.GetCurrentUserID(c), id, req)
	if err != nil {
		respondError(c, err, "更新收入失败")
		return
	}
	SuccessWithMessage(c, "更新成功", income)
}

// Delete 删除收入
// @Summary 删除收入
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service().Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		respondError(c, err, "删除收入失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
