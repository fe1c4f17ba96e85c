package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 支出类型
const (
	ExpenseTypeFixed    = "fixed"
	ExpenseTypeVariable = "variable"
)

// Expense 预算支出项
// CategoryID 引用用户类别，类别删除后置空
type Expense struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"-" gorm:"index;not null"`
	Name       string          `json:"name" gorm:"size:100;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Type       string          `json:"type" gorm:"size:10;not null;index"`
	CategoryID *uint           `json:"category" gorm:"index"`
	Category   *Category       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Frequency  string          `json:"frequency" gorm:"size:20;not null;default:monthly"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}
