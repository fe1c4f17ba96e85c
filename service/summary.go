package service

import (
	"context"
	"errors"

	"monviso/database"
	"monviso/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeView 仪表盘中的收入项
type IncomeView struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number"`
	Type      string          `json:"type"`
	IsPrimary bool            `json:"is_primary"`
	Frequency string          `json:"frequency"`
}

// ExpenseView 仪表盘中的支出项
type ExpenseView struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number"`
	Type      string          `json:"type"`
	Category  *uint           `json:"category"`
	Frequency string          `json:"frequency"`
}

// GoalView 仪表盘中的储蓄目标，含读取时计算的完成百分比
type GoalView struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	TargetAmount       decimal.Decimal `json:"target_amount" swaggertype:"number"`
	CurrentAmount      decimal.Decimal `json:"current_amount" swaggertype:"number"`
	TargetDate         *models.Date    `json:"target_date" swaggertype:"string"`
	Type               string          `json:"type"`
	Priority           string          `json:"priority"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage" swaggertype:"number"`
}

// FinancialSummary 仪表盘汇总
// total_expenses = fixed + variable，remaining_budget = total_income - total_expenses，可为负
type FinancialSummary struct {
	MonthlyIncome         *decimal.Decimal `json:"monthly_income" swaggertype:"number"`
	Currency              string           `json:"currency"`
	TotalIncome           decimal.Decimal  `json:"total_income" swaggertype:"number"`
	TotalFixedExpenses    decimal.Decimal  `json:"total_fixed_expenses" swaggertype:"number"`
	TotalVariableExpenses decimal.Decimal  `json:"total_variable_expenses" swaggertype:"number"`
	TotalExpenses         decimal.Decimal  `json:"total_expenses" swaggertype:"number"`
	RemainingBudget       decimal.Decimal  `json:"remaining_budget" swaggertype:"number"`
	Incomes               []IncomeView     `json:"incomes"`
	FixedExpenses         []ExpenseView    `json:"fixed_expenses"`
	VariableExpenses      []ExpenseView    `json:"variable_expenses"`
	SavingsGoals          []GoalView       `json:"savings_goals"`
}

// BriefSummary 简要汇总
type BriefSummary struct {
	MonthlyIncome   *decimal.Decimal `json:"monthly_income" swaggertype:"number"`
	Currency        string           `json:"currency"`
	TotalIncome     decimal.Decimal  `json:"total_income" swaggertype:"number"`
	TotalExpenses   decimal.Decimal  `json:"total_expenses" swaggertype:"number"`
	RemainingBudget decimal.Decimal  `json:"remaining_budget" swaggertype:"number"`
}

// SummaryService 读取时聚合，不缓存
type SummaryService struct {
	db *gorm.DB
}

// NewSummaryService 创建汇总服务
func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// Summary 计算当前用户的财务汇总，未完成档案时返回 NotFoundError
func (s *SummaryService) Summary(ctx context.Context, userID uint) (*FinancialSummary, error) {
	db := s.db.WithContext(ctx)

	var profile models.UserProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "用户档案"}
	}
	if err != nil {
		return nil, err
	}

	var incomes []models.Income
	if err := db.Scopes(database.OwnedBy(userID)).Order("id").Find(&incomes).Error; err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if err := db.Scopes(database.OwnedBy(userID)).Order("id").Find(&expenses).Error; err != nil {
		return nil, err
	}
	var goals []models.SavingsGoal
	if err := db.Scopes(database.OwnedBy(userID)).Order("id").Find(&goals).Error; err != nil {
		return nil, err
	}

	return buildSummary(&profile, incomes, expenses, goals), nil
}

// Brief 只返回月收入、总支出与剩余预算
func (s *SummaryService) Brief(ctx context.Context, userID uint) (*BriefSummary, error) {
	full, err := s.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &BriefSummary{
		MonthlyIncome:   full.MonthlyIncome,
		Currency:        full.Currency,
		TotalIncome:     full.TotalIncome,
		TotalExpenses:   full.TotalExpenses,
		RemainingBudget: full.RemainingBudget,
	}, nil
}

func buildSummary(profile *models.UserProfile, incomes []models.Income, expenses []models.Expense, goals []models.SavingsGoal) *FinancialSummary {
	out := &FinancialSummary{
		MonthlyIncome:         profile.MonthlyIncome,
		Currency:              profile.Currency,
		TotalIncome:           decimal.Zero,
		TotalFixedExpenses:    decimal.Zero,
		TotalVariableExpenses: decimal.Zero,
		Incomes:               make([]IncomeView, 0, len(incomes)),
		FixedExpenses:         []ExpenseView{},
		VariableExpenses:      []ExpenseView{},
		SavingsGoals:          make([]GoalView, 0, len(goals)),
	}

	for _, in := range incomes {
		out.TotalIncome = out.TotalIncome.Add(in.Amount)
		out.Incomes = append(out.Incomes, IncomeView{
			ID:        in.ID,
			Name:      in.Name,
			Amount:    in.Amount,
			Type:      in.Type,
			IsPrimary: in.IsPrimary,
			Frequency: in.Frequency,
		})
	}

	for _, e := range expenses {
		view := ExpenseView{
			ID:        e.ID,
			Name:      e.Name,
			Amount:    e.Amount,
			Type:      e.Type,
			Category:  e.CategoryID,
			Frequency: e.Frequency,
		}
		switch e.Type {
		case models.ExpenseTypeFixed:
			out.TotalFixedExpenses = out.TotalFixedExpenses.Add(e.Amount)
			out.FixedExpenses = append(out.FixedExpenses, view)
		case models.ExpenseTypeVariable:
			out.TotalVariableExpenses = out.TotalVariableExpenses.Add(e.Amount)
			out.VariableExpenses = append(out.VariableExpenses, view)
		}
	}

	for i := range goals {
		g := &goals[i]
		out.SavingsGoals = append(out.SavingsGoals, GoalView{
			ID:                 g.ID,
			Name:               g.Name,
			TargetAmount:       g.TargetAmount,
			CurrentAmount:      g.CurrentAmount,
			TargetDate:         g.TargetDate,
			Type:               g.Type,
			Priority:           g.Priority,
			ProgressPercentage: g.ProgressPercentage().Round(2),
		})
	}

	out.TotalExpenses = out.TotalFixedExpenses.Add(out.TotalVariableExpenses)
	out.RemainingBudget = out.TotalIncome.Sub(out.TotalExpenses)
	return out
}
