package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 收入类型
const (
	IncomeTypeSalary     = "salary"
	IncomeTypeFreelance  = "freelance"
	IncomeTypeInvestment = "investment"
	IncomeTypeRental     = "rental"
	IncomeTypeOther      = "other"
)

// DefaultFrequency 收入/支出默认频率
const DefaultFrequency = "monthly"

// Income 收入来源
type Income struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"-" gorm:"index;not null"`
	Name      string          `json:"name" gorm:"size:100;not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Type      string          `json:"type" gorm:"size:20;not null"`
	IsPrimary bool            `json:"is_primary" gorm:"not null;default:false"`
	Frequency string          `json:"frequency" gorm:"size:20;not null;default:monthly"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Income) TableName() string {
	return "incomes"
}
