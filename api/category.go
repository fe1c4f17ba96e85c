package api

import (
	"monviso/database"
	"monviso/middleware"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 类别处理器
type CategoryHandler struct{}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

func (h *CategoryHandler) service() *service.CategoryService {
	return service.NewCategoryService(database.DB)
}

// List 获取类别列表
// @Summary 获取类别列表
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param type query string false "income / expense"
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.service().List(c.Request.Context(), middleware.GetCurrentUserID(c), c.Query("type"))
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建类别
// @Description 同一用户下 (name, type) 唯一
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CategoryInput true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误或类别已存在"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req service.CategoryInput
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.service().Create(c.Request.Context(), middleware.GetCurrentUserID(c), req)
	if err != nil {
		respondError(c, err, "创建类别失败")
		return
	}
	SuccessWithMessage(c, "创建成功", category)
}

// Get 获取类别
// @Summary 获取类别
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Success 200 {object} Response{data=models.Category} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := h.service().Get(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, category)
}

// Update 更新类别
// @Summary 更新类别
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Param request body service.CategoryInput true "类别信息"
// @Success 200 {object} Response{data=models.Category} "更新成功"
// @Failure 400 {object} Response "参数错误或类别已存在"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.CategoryInput
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.service().Update(c.Request.Context(), middleware.GetCurrentUserID(c), id, req)
	if err != nil {
		respondError(c, err, "更新类别失败")
		return
	}
	SuccessWithMessage(c, "更新成功", category)
}

// Delete 删除类别
// @Summary 删除类别
// @Description 引用该类别的支出项 category 置空
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service().Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		respondError(c, err, "删除类别失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
