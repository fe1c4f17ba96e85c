package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 交易类型
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// 交易频率
const (
	FrequencyUnique    = "unique"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

// 支付方式
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentCheck    = "check"
	PaymentOther    = "other"
)

// TransactionOrder 默认排序：日期倒序，再按创建时间倒序
const TransactionOrder = "date DESC, created_at DESC, id DESC"

// Transaction 交易流水
// Category 为自由文本，不是外键
type Transaction struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"-" gorm:"index:idx_transactions_user_date,priority:1;not null"`
	Name          string          `json:"name" gorm:"size:100;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Type          string          `json:"type" gorm:"size:10;not null"`
	Category      string          `json:"category" gorm:"size:100"`
	Date          Date            `json:"date" gorm:"type:date;not null;index:idx_transactions_user_date,priority:2"`
	PaymentMethod string          `json:"payment_method" gorm:"size:20"`
	Frequency     string          `json:"frequency" gorm:"size:20;not null;default:unique"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}
