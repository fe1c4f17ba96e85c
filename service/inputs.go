package service

import (
	"strings"

	"monviso/models"

	"github.com/shopspring/decimal"
)

// 金额字段统一规则：最小 0.01，不超过 DECIMAL(10,2) 上限

// IncomeInput 收入来源参数
type IncomeInput struct {
	Name      string          `json:"name" validate:"required,max=100" example:"Stipendio"`
	Amount    decimal.Decimal `json:"amount" validate:"gte=0.01,lte=99999999.99,money" swaggertype:"number" example:"2500"`
	Type      string          `json:"type" validate:"required,oneof=salary freelance investment rental other" example:"salary"`
	IsPrimary bool            `json:"is_primary" example:"true"`
	Frequency string          `json:"frequency" validate:"max=20" example:"monthly"`
}

func (in IncomeInput) model(userID uint) models.Income {
	return models.Income{
		UserID:    userID,
		Name:      strings.TrimSpace(in.Name),
		Amount:    in.Amount,
		Type:      in.Type,
		IsPrimary: in.IsPrimary,
		Frequency: frequencyOrDefault(in.Frequency),
	}
}

// ExpenseInput 支出参数，Type 在引导流程中由所在列表决定
type ExpenseInput struct {
	Name      string          `json:"name" validate:"required,max=100" example:"Affitto"`
	Amount    decimal.Decimal `json:"amount" validate:"gte=0.01,lte=99999999.99,money" swaggertype:"number" example:"800"`
	Type      string          `json:"type" validate:"omitempty,oneof=fixed variable" example:"fixed"`
	Category  *uint           `json:"category" example:"1"`
	Frequency string          `json:"frequency" validate:"max=20" example:"monthly"`
}

func (in ExpenseInput) model(userID uint, expenseType string) models.Expense {
	return models.Expense{
		UserID:     userID,
		Name:       strings.TrimSpace(in.Name),
		Amount:     in.Amount,
		Type:       expenseType,
		CategoryID: in.Category,
		Frequency:  frequencyOrDefault(in.Frequency),
	}
}

// SavingsGoalInput 储蓄目标参数
type SavingsGoalInput struct {
	Name          string          `json:"name" validate:"required,max=100" example:"Fondo emergenza"`
	TargetAmount  decimal.Decimal `json:"target_amount" validate:"gte=0.01,lte=99999999.99,money" swaggertype:"number" example:"5000"`
	CurrentAmount decimal.Decimal `json:"current_amount" validate:"gte=0,lte=99999999.99,money" swaggertype:"number" example:"1000"`
	TargetDate    *models.Date    `json:"target_date" swaggertype:"string" example:"2025-12-31"`
	Type          string          `json:"type" validate:"required,oneof=emergency vacation purchase investment other" example:"emergency"`
	Priority      string          `json:"priority" validate:"omitempty,oneof=high medium low" example:"high"`
}

func (in SavingsGoalInput) model(userID uint) models.SavingsGoal {
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	return models.SavingsGoal{
		UserID:        userID,
		Name:          strings.TrimSpace(in.Name),
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		TargetDate:    in.TargetDate,
		Type:          in.Type,
		Priority:      priority,
	}
}

// CategoryInput 类别参数
type CategoryInput struct {
	Name          string           `json:"name" validate:"required,max=100" example:"Spesa"`
	Type          string           `json:"type" validate:"required,oneof=income expense" example:"expense"`
	Color         string           `json:"color" validate:"omitempty,hexcolor" example:"#6366F1"`
	Icon          string           `json:"icon" validate:"max=16" example:"🛒"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget" validate:"omitempty,gte=0,lte=99999999.99,money" swaggertype:"number" example:"300"`
}

func (in CategoryInput) apply(c *models.Category) {
	c.Name = strings.TrimSpace(in.Name)
	c.Type = in.Type
	c.Color = in.Color
	if c.Color == "" {
		c.Color = models.DefaultCategoryColor
	}
	c.Icon = in.Icon
	if c.Icon == "" {
		c.Icon = models.DefaultCategoryIcon
	}
	c.MonthlyBudget = in.MonthlyBudget
}

// TransactionInput 交易参数，Amount 可正可负但必须提供
type TransactionInput struct {
	Name          string           `json:"name" validate:"required,max=100" example:"Supermercato"`
	Amount        *decimal.Decimal `json:"amount" validate:"required,gte=-99999999.99,lte=99999999.99,money" swaggertype:"number" example:"-45.30"`
	Type          string           `json:"type" validate:"required,oneof=income expense" example:"expense"`
	Category      string           `json:"category" validate:"max=100" example:"Spesa"`
	Date          models.Date      `json:"date" validate:"required" swaggertype:"string" example:"2024-03-15"`
	PaymentMethod string           `json:"payment_method" validate:"omitempty,oneof=cash card transfer check other" example:"card"`
	Frequency     string           `json:"frequency" validate:"omitempty,oneof=unique monthly quarterly yearly" example:"unique"`
}

func (in TransactionInput) apply(t *models.Transaction) {
	t.Name = strings.TrimSpace(in.Name)
	t.Amount = *in.Amount
	t.Type = in.Type
	t.Category = strings.TrimSpace(in.Category)
	t.Date = in.Date
	t.PaymentMethod = in.PaymentMethod
	t.Frequency = in.Frequency
	if t.Frequency == "" {
		t.Frequency = models.FrequencyUnique
	}
}

func frequencyOrDefault(f string) string {
	if f = strings.TrimSpace(f); f != "" {
		return f
	}
	return models.DefaultFrequency
}
