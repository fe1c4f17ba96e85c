package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 储蓄目标类型
const (
	GoalTypeEmergency  = "emergency"
	GoalTypeVacation   = "vacation"
	GoalTypePurchase   = "purchase"
	GoalTypeInvestment = "investment"
	GoalTypeOther      = "other"
)

// 优先级
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

var hundred = decimal.NewFromInt(100)

// SavingsGoal 储蓄目标
type SavingsGoal struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"-" gorm:"index;not null"`
	Name          string          `json:"name" gorm:"size:100;not null"`
	TargetAmount  decimal.Decimal `json:"target_amount" gorm:"type:decimal(10,2);not null"`
	CurrentAmount decimal.Decimal `json:"current_amount" gorm:"type:decimal(10,2);not null;default:0"`
	TargetDate    *Date           `json:"target_date" gorm:"type:date"`
	Type          string          `json:"type" gorm:"size:20;not null"`
	Priority      string          `json:"priority" gorm:"size:10;not null;default:medium"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (SavingsGoal) TableName() string {
	return "savings_goals"
}

// ProgressPercentage 完成百分比 = min(100, current/target*100)，target 非正时为 0
// 读取时计算，不落库
func (g *SavingsGoal) ProgressPercentage() decimal.Decimal {
	return ProgressPercentage(g.CurrentAmount, g.TargetAmount)
}

// ProgressPercentage 见 SavingsGoal.ProgressPercentage
func ProgressPercentage(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(hundred, current.Div(target).Mul(hundred))
}
