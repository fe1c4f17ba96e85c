package api

import (
	"monviso/config"
	"monviso/database"
	"monviso/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

func (h *AuthHandler) service() *service.AuthService {
	return service.NewAuthService(database.DB, h.cfg)
}

// RefreshRequest 刷新/注销请求
type RefreshRequest struct {
	Refresh string `json:"refresh" example:"3f9a..."`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建账号并返回令牌对。用户名与邮箱分别唯一，先检查用户名
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body service.RegisterInput true "注册信息"
// @Success 201 {object} Response{data=service.AuthResult} "注册成功"
// @Failure 400 {object} Response "参数错误或用户名/邮箱已存在"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service().Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "注册失败")
		return
	}

	Created(c, "注册成功", result)
}

// Login 用户登录
// @Summary 用户登录
// @Description email 字段可填邮箱或用户名，先按邮箱匹配
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body service.LoginInput true "登录信息"
// @Success 200 {object} Response{data=service.AuthResult} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "用户名或密码错误"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service().Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "登录失败")
		return
	}

	SuccessWithMessage(c, "登录成功", result)
}

// Refresh 刷新访问令牌
// @Summary 刷新访问令牌
// @Description 用刷新令牌换取新的访问令牌；开启轮换时同时返回新的刷新令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "刷新令牌"
// @Success 200 {object} Response{data=service.TokenPair} "刷新成功"
// @Failure 401 {object} Response "刷新令牌无效或已过期"
// @Router /api/auth/token/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.service().Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		respondError(c, err, "刷新令牌失败")
		return
	}

	Success(c, pair)
}

// Logout 注销
// @Summary 注销
// @Description 作废刷新令牌，未知令牌同样返回成功
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "刷新令牌"
// @Success 200 {object} Response "注销成功"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service().Logout(c.Request.Context(), req.Refresh); err != nil {
		respondError(c, err, "注销失败")
		return
	}

	SuccessWithMessage(c, "注销成功", nil)
}
