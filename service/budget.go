package service

import (
	"context"

	"monviso/database"
	"monviso/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeService 收入来源
type IncomeService struct {
	db *gorm.DB
}

// NewIncomeService 创建收入服务
func NewIncomeService(db *gorm.DB) *IncomeService {
	return &IncomeService{db: db}
}

func (s *IncomeService) List(ctx context.Context, userID uint) ([]models.Income, error) {
	incomes := []models.Income{}
	err := s.db.WithContext(ctx).Scopes(database.OwnedBy(userID)).Order("id").Find(&incomes).Error
	return incomes, err
}

func (s *IncomeService) Create(ctx context.Context, userID uint, in IncomeInput) (*models.Income, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	income := in.model(userID)
	if err := s.db.WithContext(ctx).Create(&income).Error; err != nil {
		return nil, err
	}
	return &income, nil
}

func (s *IncomeService) Get(ctx context.Context, userID, id uint) (*models.Income, error) {
	var income models.Income
	if err := findOwned(s.db.WithContext(ctx), &income, userID, id, "收入"); err != nil {
		return nil, err
	}
	return &income, nil
}

func (s *IncomeService) Update(ctx context.Context, userID, id uint, in IncomeInput) (*models.Income, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)
	var income models.Income
	if err := findOwned(db, &income, userID, id, "收入"); err != nil {
		return nil, err
	}
	updated := in.model(userID)
	updated.ID = income.ID
	updated.CreatedAt = income.CreatedAt
	if err := db.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *IncomeService) Delete(ctx context.Context, userID, id uint) error {
	db := s.db.WithContext(ctx)
	var income models.Income
	if err := findOwned(db, &income, userID, id, "收入"); err != nil {
		return err
	}
	return db.Delete(&income).Error
}

// ExpenseService 预算支出
type ExpenseService struct {
	db *gorm.DB
}

// NewExpenseService 创建支出服务
func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// List 列出支出，expenseType 为空时返回全部
func (s *ExpenseService) List(ctx context.Context, userID uint, expenseType string) ([]models.Expense, error) {
	query := s.db.WithContext(ctx).Scopes(database.OwnedBy(userID))
	if expenseType != "" {
		query = query.Where("type = ?", expenseType)
	}
	expenses := []models.Expense{}
	err := query.Order("id").Find(&expenses).Error
	return expenses, err
}

func (s *ExpenseService) Create(ctx context.Context, userID uint, in ExpenseInput) (*models.Expense, error) {
	if err := s.validate(ctx, userID, in); err != nil {
		return nil, err
	}
	expense := in.model(userID, in.Type)
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpenseService) Get(ctx context.Context, userID, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := findOwned(s.db.WithContext(ctx), &expense, userID, id, "支出"); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpenseService) Update(ctx context.Context, userID, id uint, in ExpenseInput) (*models.Expense, error) {
	if err := s.validate(ctx, userID, in); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)
	var expense models.Expense
	if err := findOwned(db, &expense, userID, id, "支出"); err != nil {
		return nil, err
	}
	updated := in.model(userID, in.Type)
	updated.ID = expense.ID
	updated.CreatedAt = expense.CreatedAt
	if err := db.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id uint) error {
	db := s.db.WithContext(ctx)
	var expense models.Expense
	if err := findOwned(db, &expense, userID, id, "支出"); err != nil {
		return err
	}
	return db.Delete(&expense).Error
}

// validate 单独创建支出时 type 必填，引用的类别必须属于当前用户
func (s *ExpenseService) validate(ctx context.Context, userID uint, in ExpenseInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.Type == "" {
		return newValidationError("type", "该字段必填")
	}
	if in.Category == nil {
		return nil
	}
	owned, err := ownedCategoryIDs(s.db.WithContext(ctx), userID, []uint{*in.Category})
	if err != nil {
		return err
	}
	if !owned[*in.Category] {
		return newValidationError("category", "类别不存在")
	}
	return nil
}

// SavingsGoalService 储蓄目标
type SavingsGoalService struct {
	db *gorm.DB
}

// NewSavingsGoalService 创建储蓄目标服务
func NewSavingsGoalService(db *gorm.DB) *SavingsGoalService {
	return &SavingsGoalService{db: db}
}

// GoalWithProgress 带完成百分比的储蓄目标
type GoalWithProgress struct {
	models.SavingsGoal
	ProgressPercentage decimal.Decimal `json:"progress_percentage" swaggertype:"number"`
}

func withProgress(g models.SavingsGoal) GoalWithProgress {
	return GoalWithProgress{SavingsGoal: g, ProgressPercentage: g.ProgressPercentage().Round(2)}
}

func (s *SavingsGoalService) List(ctx context.Context, userID uint) ([]GoalWithProgress, error) {
	var goals []models.SavingsGoal
	if err := s.db.WithContext(ctx).Scopes(database.OwnedBy(userID)).Order("id").Find(&goals).Error; err != nil {
		return nil, err
	}
	out := make([]GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, withProgress(g))
	}
	return out, nil
}

func (s *SavingsGoalService) Create(ctx context.Context, userID uint, in SavingsGoalInput) (*GoalWithProgress, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	goal := in.model(userID)
	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, err
	}
	out := withProgress(goal)
	return &out, nil
}

func (s *SavingsGoalService) Get(ctx context.Context, userID, id uint) (*GoalWithProgress, error) {
	var goal models.SavingsGoal
	if err := findOwned(s.db.WithContext(ctx), &goal, userID, id, "储蓄目标"); err != nil {
		return nil, err
	}
	out := withProgress(goal)
	return &out, nil
}

func (s *SavingsGoalService) Update(ctx context.Context, userID, id uint, in SavingsGoalInput) (*GoalWithProgress, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)
	var goal models.SavingsGoal
	if err := findOwned(db, &goal, userID, id, "储蓄目标"); err != nil {
		return nil, err
	}
	updated := in.model(userID)
	updated.ID = goal.ID
	updated.CreatedAt = goal.CreatedAt
	if err := db.Save(&updated).Error; err != nil {
		return nil, err
	}
	out := withProgress(updated)
	return &out, nil
}

func (s *SavingsGoalService) Delete(ctx context.Context, userID, id uint) error {
	db := s.db.WithContext(ctx)
	var goal models.SavingsGoal
	if err := findOwned(db, &goal, userID, id, "储蓄目标"); err != nil {
		return err
	}
	return db.Delete(&goal).Error
}
