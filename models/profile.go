package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency 默认币种
const DefaultCurrency = "EUR"

// UserProfile 用户财务档案，与用户一对一，仅由引导流程写入
type UserProfile struct {
	ID                  uint             `json:"-" gorm:"primaryKey"`
	UserID              uint             `json:"-" gorm:"uniqueIndex;not null"`
	MonthlyIncome       *decimal.Decimal `json:"monthly_income" gorm:"type:decimal(10,2)"`
	Currency            string           `json:"currency" gorm:"size:3;not null;default:EUR"`
	OnboardingCompleted bool             `json:"onboarding_completed" gorm:"not null;default:false"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
