package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"monviso/database"
	"monviso/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OnboardingInput 引导流程提交的数据，缺省列表视为空
type OnboardingInput struct {
	FirstName        string             `json:"first_name" validate:"required,max=150" example:"Alice"`
	LastName         string             `json:"last_name" validate:"required,max=150" example:"Rossi"`
	MonthlyIncome    *decimal.Decimal   `json:"monthly_income" validate:"required,gte=0,lte=99999999.99,money" swaggertype:"number" example:"3000"`
	Currency         string             `json:"currency" validate:"omitempty,len=3,alpha" example:"EUR"`
	Incomes          []IncomeInput      `json:"incomes" validate:"dive"`
	FixedExpenses    []ExpenseInput     `json:"fixed_expenses" validate:"dive"`
	VariableExpenses []ExpenseInput     `json:"variable_expenses" validate:"dive"`
	SavingsGoals     []SavingsGoalInput `json:"savings_goals" validate:"dive"`
}

// OnboardingResult 引导完成后的用户与档案
type OnboardingResult struct {
	User    models.PublicUser  `json:"user"`
	Profile models.UserProfile `json:"profile"`
}

// OnboardingStatus 引导状态
type OnboardingStatus struct {
	OnboardingCompleted bool `json:"onboarding_completed"`
	HasProfile          bool `json:"has_profile"`
}

// OnboardingService 引导流程
type OnboardingService struct {
	db *gorm.DB
}

// NewOnboardingService 创建引导服务
func NewOnboardingService(db *gorm.DB) *OnboardingService {
	return &OnboardingService{db: db}
}

// Complete 一次性写入用户姓名、档案、收入、支出与储蓄目标
// 先完成全部校验，再在同一个事务内写入，任何一步失败都整体回滚
func (s *OnboardingService) Complete(ctx context.Context, userID uint, in OnboardingInput) (*OnboardingResult, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.Currency == "" {
		in.Currency = models.DefaultCurrency
	}

	db := s.db.WithContext(ctx)
	if err := checkExpenseCategories(db, userID, in); err != nil {
		return nil, err
	}

	incomes := make([]models.Income, 0, len(in.Incomes))
	for _, item := range in.Incomes {
		incomes = append(incomes, item.model(userID))
	}
	fixed := make([]models.Expense, 0, len(in.FixedExpenses))
	for _, item := range in.FixedExpenses {
		fixed = append(fixed, item.model(userID, models.ExpenseTypeFixed))
	}
	variable := make([]models.Expense, 0, len(in.VariableExpenses))
	for _, item := range in.VariableExpenses {
		variable = append(variable, item.model(userID, models.ExpenseTypeVariable))
	}
	goals := make([]models.SavingsGoal, 0, len(in.SavingsGoals))
	for _, item := range in.SavingsGoals {
		goals = append(goals, item.model(userID))
	}

	var result OnboardingResult
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.User{ID: userID}).Updates(map[string]interface{}{
			"first_name": in.FirstName,
			"last_name":  in.LastName,
		}).Error
		if err != nil {
			return fmt.Errorf("更新用户信息失败: %w", err)
		}

		profile := models.UserProfile{
			UserID:              userID,
			MonthlyIncome:       in.MonthlyIncome,
			Currency:            in.Currency,
			OnboardingCompleted: true,
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"monthly_income", "currency", "onboarding_completed", "updated_at"}),
		}).Create(&profile).Error
		if err != nil {
			return fmt.Errorf("保存用户档案失败: %w", err)
		}

		if err := createAll(tx, incomes); err != nil {
			return fmt.Errorf("保存收入失败: %w", err)
		}
		if err := createAll(tx, fixed); err != nil {
			return fmt.Errorf("保存固定支出失败: %w", err)
		}
		if err := createAll(tx, variable); err != nil {
			return fmt.Errorf("保存可变支出失败: %w", err)
		}
		if err := createAll(tx, goals); err != nil {
			return fmt.Errorf("保存储蓄目标失败: %w", err)
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "用户"}
			}
			return err
		}
		// upsert 后 LastInsertId 不可靠，按 user_id 重新读取
		if err := tx.Where("user_id = ?", userID).First(&result.Profile).Error; err != nil {
			return err
		}
		result.User = user.Public()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// createAll 批量插入，空切片跳过
func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// checkExpenseCategories 支出引用的类别必须属于当前用户
func checkExpenseCategories(db *gorm.DB, userID uint, in OnboardingInput) error {
	refs := make(map[uint][]string)
	collect := func(list string, items []ExpenseInput) {
		for i, item := range items {
			if item.Category != nil {
				path := fmt.Sprintf("%s[%d].category", list, i)
				refs[*item.Category] = append(refs[*item.Category], path)
			}
		}
	}
	collect("fixed_expenses", in.FixedExpenses)
	collect("variable_expenses", in.VariableExpenses)
	if len(refs) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(refs))
	for id := range refs {
		ids = append(ids, id)
	}
	owned, err := ownedCategoryIDs(db, userID, ids)
	if err != nil {
		return err
	}

	fields := make(map[string]string)
	for id, paths := range refs {
		if !owned[id] {
			for _, p := range paths {
				fields[p] = "类别不存在"
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func ownedCategoryIDs(db *gorm.DB, userID uint, ids []uint) (map[uint]bool, error) {
	var found []uint
	err := db.Model(&models.Category{}).
		Scopes(database.OwnedBy(userID)).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	owned := make(map[uint]bool, len(found))
	for _, id := range found {
		owned[id] = true
	}
	return owned, nil
}

// Status 返回引导状态，档案不存在时两项均为 false
func (s *OnboardingService) Status(ctx context.Context, userID uint) (*OnboardingStatus, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &OnboardingStatus{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &OnboardingStatus{
		OnboardingCompleted: profile.OnboardingCompleted,
		HasProfile:          true,
	}, nil
}
