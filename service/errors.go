package service

import (
	"fmt"
	"strings"
)

// ValidationError 输入校验失败，Fields 为字段路径到错误描述
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "参数校验失败: " + strings.Join(parts, "; ")
}

// newValidationError 构造单字段校验错误
func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AuthError 认证失败，消息不区分具体原因
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ConflictError 唯一性冲突
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError 记录不存在或不属于当前用户，两种情况对外表现一致
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " 不存在"
}

var (
	errInvalidCredentials = &AuthError{Message: "用户名或密码错误"}
	errInvalidRefresh     = &AuthError{Message: "刷新令牌无效或已过期"}
)
