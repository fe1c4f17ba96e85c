package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"monviso/config"
	"monviso/middleware"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// Created 201 响应
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ValidationFailed 400 响应，data 为字段到错误描述的映射
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: "参数校验失败",
		Data:    fields,
	})
}

// respondError 将服务层错误映射为响应
// 非预期错误记录请求 ID 后返回 500
func respondError(c *gin.Context, err error, fallback string) {
	var (
		validationErr *service.ValidationError
		authErr       *service.AuthError
		conflictErr   *service.ConflictError
		notFoundErr   *service.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		ValidationFailed(c, validationErr.Fields)
	case errors.As(err, &authErr):
		Unauthorized(c, authErr.Message)
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusBadRequest, Response{
			Code:    http.StatusBadRequest,
			Message: conflictErr.Message,
			Data:    map[string]string{conflictErr.Field: conflictErr.Message},
		})
	case errors.As(err, &notFoundErr):
		NotFound(c, notFoundErr.Error())
	default:
		log.Printf("[%s] %s %s 失败: %v", middleware.GetRequestID(c), c.Request.Method, c.FullPath(), err)
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}

// bindJSON 解析请求体，失败时直接写 400
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, SafeErrorMessage(err, "请求参数格式错误"))
		return false
	}
	return true
}

// parseID 解析路径参数 id
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
