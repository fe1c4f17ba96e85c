package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"monviso/database"
	"monviso/middleware"
	"monviso/models"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 交易流水处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建交易流水处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

func (h *TransactionHandler) service() *service.TransactionService {
	return service.NewTransactionService(database.DB)
}

// parseFilter 解析 start_date / end_date / type 查询参数
func parseFilter(c *gin.Context) (service.TransactionFilter, bool) {
	var f service.TransactionFilter
	for _, p := range []struct {
		key  string
		dest **models.Date
	}{
		{"start_date", &f.StartDate},
		{"end_date", &f.EndDate},
	} {
		raw := c.Query(p.key)
		if raw == "" {
			continue
		}
		d, err := models.ParseDate(raw)
		if err != nil {
			ValidationFailed(c, map[string]string{p.key: "日期格式错误，应为 " + models.DateLayout})
			return f, false
		}
		*p.dest = &d
	}
	f.Type = c.Query("type")
	return f, true
}

// List 获取交易列表
// @Summary 获取交易列表
// @Description 按日期倒序、创建时间倒序返回当前用户的全部交易
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Param type query string false "income / expense"
// @Success 200 {object} Response{data=[]models.Transaction} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	list, err := h.service().List(c.Request.Context(), middleware.GetCurrentUserID(c), filter)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, list)
}

// Create 创建交易
// @Summary 创建交易
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.TransactionInput true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req service.TransactionInput
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.service().Create(c.Request.Context(), middleware.GetCurrentUserID(c), req)
	if err != nil {
		respondError(c, err, "创建交易失败")
		return
	}
	SuccessWithMessage(c, "创建成功", t)
}

// Get 获取单条交易
// @Summary 获取单条交易
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易ID"
// @Success 200 {object} Response{data=models.Transaction} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.service().Get(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, t)
}

// Update 更新交易
// @Summary 更新交易
// @Description 整体替换可写字段，校验规则与创建相同
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易ID"
// @Param request body service.TransactionInput true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.TransactionInput
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.service().Update(c.Request.Context(), middleware.GetCurrentUserID(c), id, req)
	if err != nil {
		respondError(c, err, "更新交易失败")
		return
	}
	SuccessWithMessage(c, "更新成功", t)
}

// Delete 删除交易
// @Summary 删除交易
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service().Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		respondError(c, err, "删除交易失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// Export 导出交易
// @Summary 导出交易
// @Description 导出为 CSV（默认）或 Excel，Excel 末尾附收入/支出/净额汇总
// @Tags 交易
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "csv / xlsx" default(csv)
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/transactions/export [get]
func (h *TransactionHandler) Export(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	if format != "csv" && format != "xlsx" {
		BadRequest(c, "不支持的导出格式，可选: csv, xlsx")
		return
	}
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	list, err := h.service().List(c.Request.Context(), middleware.GetCurrentUserID(c), filter)
	if err != nil {
		respondError(c, err, "查询数据失败")
		return
	}

	buf := new(bytes.Buffer)
	contentType := "text/csv; charset=utf-8"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = service.WriteTransactionsXLSX(buf, list)
	} else {
		err = service.WriteTransactionsCSV(buf, list)
	}
	if err != nil {
		respondError(c, err, "生成导出文件失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.%s", exportSuffix(filter), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func exportSuffix(f service.TransactionFilter) string {
	start, end := "all", "all"
	if f.StartDate != nil {
		start = f.StartDate.String()
	}
	if f.EndDate != nil {
		end = f.EndDate.String()
	}
	return start + "_" + end
}
