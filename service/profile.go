package service

import (
	"context"
	"errors"

	"monviso/models"

	"gorm.io/gorm"
)

// Profile 当前用户信息，档案未创建时 profile 为 null
type Profile struct {
	models.PublicUser
	Profile *models.UserProfile `json:"profile"`
}

// ProfileService 用户信息
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 创建用户信息服务
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get 读取用户公开字段与财务档案
func (s *ProfileService) Get(ctx context.Context, userID uint) (*Profile, error) {
	db := s.db.WithContext(ctx)

	var user models.User
	err := db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "用户"}
	}
	if err != nil {
		return nil, err
	}

	out := &Profile{PublicUser: user.Public()}
	var profile models.UserProfile
	err = db.Where("user_id = ?", userID).First(&profile).Error
	switch {
	case err == nil:
		out.Profile = &profile
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	return out, nil
}
