package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"monviso/config"
	"monviso/middleware"
	"monviso/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash 用户不存在时参与一次比对，使耗时与密码错误一致
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("monviso-timing-guard"), bcrypt.DefaultCost)

// AuthService 注册、登录与令牌刷新
type AuthService struct {
	db     *gorm.DB
	jwt    config.JWTConfig
	appURL string
	mailer *EmailService
}

// NewAuthService 创建认证服务
func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:     db,
		jwt:    cfg.JWT,
		appURL: cfg.Server.BaseURL,
		mailer: NewEmailService(&cfg.Email),
	}
}

// RegisterInput 注册参数
type RegisterInput struct {
	Username  string `json:"username" validate:"required,max=150" example:"alice"`
	Email     string `json:"email" validate:"required,email,max=254" example:"alice@example.com"`
	Password  string `json:"password" validate:"required,min=8,max=128" example:"password123"`
	FirstName string `json:"first_name" validate:"max=150" example:"Alice"`
	LastName  string `json:"last_name" validate:"max=150" example:"Rossi"`
	FullName  string `json:"full_name" validate:"max=300" example:"Alice Rossi"`
}

// LoginInput 登录参数，Email 字段可填邮箱或用户名
type LoginInput struct {
	Email    string `json:"email" example:"alice@example.com"`
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"password123"`
}

// Identifier 返回登录标识，优先 email 字段
func (in *LoginInput) Identifier() string {
	if s := strings.TrimSpace(in.Email); s != "" {
		return s
	}
	return strings.TrimSpace(in.Username)
}

// TokenPair 令牌对
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// AuthResult 注册/登录结果
type AuthResult struct {
	TokenPair
	User models.PublicUser `json:"user"`
}

// Register 注册新用户
// 用户名先于邮箱检查，两者分别报告冲突
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Field: "username", Message: "该用户名已被使用"}
	}
	if err := db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Field: "email", Message: "该邮箱已被注册"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	firstName, lastName := displayNames(in)
	user := models.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hashed),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := db.Create(&user).Error; err != nil {
		// 并发注册时由唯一索引兜底
		if isUniqueConstraintError(err) {
			if strings.Contains(err.Error(), "email") {
				return nil, &ConflictError{Field: "email", Message: "该邮箱已被注册"}
			}
			return nil, &ConflictError{Field: "username", Message: "该用户名已被使用"}
		}
		return nil, err
	}

	pair, err := s.issueTokens(db, &user)
	if err != nil {
		return nil, err
	}

	if s.mailer.Enabled() {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.FirstName, s.appURL); err != nil {
			log.Printf("发送欢迎邮件失败 user=%d: %v", user.ID, err)
		}
	}

	return &AuthResult{TokenPair: *pair, User: user.Public()}, nil
}

// displayNames 未提供 first_name 时取 full_name 的第一个词，仍为空则使用用户名
func displayNames(in RegisterInput) (string, string) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" {
		if parts := strings.Fields(in.FullName); len(parts) > 0 {
			first = parts[0]
			if last == "" {
				last = strings.Join(parts[1:], " ")
			}
		}
	}
	if first == "" {
		first = in.Username
	}
	return first, last
}

// Login 登录：先按邮箱匹配，无匹配时再按用户名
// 任何失败都返回同一个 AuthError
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	identifier := in.Identifier()
	if identifier == "" || in.Password == "" {
		return nil, &ValidationError{Fields: map[string]string{
			"email":    "邮箱或用户名必填",
			"password": "该字段必填",
		}}
	}

	db := s.db.WithContext(ctx)

	user, err := s.lookupUser(db, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	pair, err := s.issueTokens(db, user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{TokenPair: *pair, User: user.Public()}, nil
}

func (s *AuthService) lookupUser(db *gorm.DB, identifier string) (*models.User, error) {
	for _, column := range []string{"email", "username"} {
		var user models.User
		err := db.Where(column+" = ?", identifier).First(&user).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, nil
}

// Refresh 用刷新令牌换取新的访问令牌
// 开启 rotate_refresh 时旧令牌作废并返回新的刷新令牌
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, newValidationError("refresh", "该字段必填")
	}

	db := s.db.WithContext(ctx)

	var rt models.RefreshToken
	err := db.Where("token_hash = ?", models.HashToken(refreshToken)).First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errInvalidRefresh
	}
	if err != nil {
		return nil, err
	}
	if !rt.IsValid() {
		return nil, errInvalidRefresh
	}

	var user models.User
	err = db.First(&user, rt.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errInvalidRefresh
	}
	if err != nil {
		return nil, err
	}

	if !s.jwt.RotateRefresh {
		access, err := middleware.GenerateToken(user.ID, user.Username, s.jwt.AccessExpireTime)
		if err != nil {
			return nil, err
		}
		return &TokenPair{Access: access}, nil
	}

	var pair *TokenPair
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&rt).Update("revoked", true).Error; err != nil {
			return err
		}
		var err error
		pair, err = s.issueTokens(tx, &user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout 作废刷新令牌，未知令牌直接忽略
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return newValidationError("refresh", "该字段必填")
	}
	return s.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("token_hash = ?", models.HashToken(refreshToken)).
		Update("revoked", true).Error
}

// issueTokens 签发访问令牌并保存刷新令牌哈希
func (s *AuthService) issueTokens(db *gorm.DB, user *models.User) (*TokenPair, error) {
	access, err := middleware.GenerateToken(user.ID, user.Username, s.jwt.AccessExpireTime)
	if err != nil {
		return nil, fmt.Errorf("生成访问令牌失败: %w", err)
	}

	refresh, err := models.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("生成刷新令牌失败: %w", err)
	}
	rt := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: models.HashToken(refresh),
		ExpiresAt: time.Now().Add(s.jwt.RefreshExpireTime),
	}
	if err := db.Create(&rt).Error; err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}
