package models

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// RefreshToken 刷新令牌，仅保存哈希值
type RefreshToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	TokenHash string    `json:"-" gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	Revoked   bool      `json:"revoked" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// GenerateToken 生成随机令牌（32 字节 hex）
func GenerateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// HashToken 计算令牌的 sha256 哈希
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// IsExpired 检查令牌是否过期
func (r *RefreshToken) IsExpired() bool {
	return time.Now().After(r.ExpiresAt)
}

// IsValid 检查令牌是否有效
func (r *RefreshToken) IsValid() bool {
	return !r.Revoked && !r.IsExpired()
}
