package api

import (
	"monviso/database"
	"monviso/middleware"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 汇总处理器
type SummaryHandler struct{}

// NewSummaryHandler 创建汇总处理器
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// Dashboard 仪表盘数据
// @Summary 仪表盘数据
// @Description 读取时计算总收入、固定/可变支出、剩余预算，并列出各收支项与储蓄目标
// @Tags 汇总
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.FinancialSummary} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "尚未完成引导"
// @Router /api/dashboard [get]
// @Router /api/financial-data [get]
func (h *SummaryHandler) Dashboard(c *gin.Context) {
	summary, err := service.NewSummaryService(database.DB).Summary(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err, "获取汇总失败")
		return
	}
	Success(c, summary)
}

// Brief 简要汇总
// @Summary 简要汇总
// @Tags 汇总
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.BriefSummary} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "尚未完成引导"
// @Router /api/summary [get]
func (h *SummaryHandler) Brief(c *gin.Context) {
	brief, err := service.NewSummaryService(database.DB).Brief(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err, "获取汇总失败")
		return
	}
	Success(c, brief)
}
