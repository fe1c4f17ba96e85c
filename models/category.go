package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 类别类型
const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

// 类别默认展示属性
const (
	DefaultCategoryColor = "#6366F1"
	DefaultCategoryIcon  = "💰"
)

// Category 用户自定义类别，(name, user_id, type) 唯一
type Category struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	UserID        uint             `json:"-" gorm:"not null;uniqueIndex:idx_categories_name_user_type,priority:2"`
	Name          string           `json:"name" gorm:"size:100;not null;uniqueIndex:idx_categories_name_user_type,priority:1"`
	Type          string           `json:"type" gorm:"size:10;not null;uniqueIndex:idx_categories_name_user_type,priority:3"`
	Color         string           `json:"color" gorm:"size:9;default:#6366F1"`
	Icon          string           `json:"icon" gorm:"size:16;default:💰"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget" gorm:"type:decimal(10,2)"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
