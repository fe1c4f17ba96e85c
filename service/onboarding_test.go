package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func onboardingPayload() OnboardingInput {
	return OnboardingInput{
		FirstName:     "Alice",
		LastName:      "Rossi",
		MonthlyIncome: decPtr("3000"),
		Incomes: []IncomeInput{
			{Name: "Stipendio", Amount: dec("2500"), Type: "salary", IsPrimary: true},
			{Name: "Freelance", Amount: dec("500"), Type: "freelance"},
		},
		FixedExpenses: []ExpenseInput{
			// 提交的 type 会被列表覆盖
			{Name: "Affitto", Amount: dec("800"), Type: "variable"},
		},
		VariableExpenses: []ExpenseInput{
			{Name: "Spesa", Amount: dec("300")},
		},
		SavingsGoals: []SavingsGoalInput{
			{Name: "Fondo", TargetAmount: dec("5000"), CurrentAmount: dec("1000"), Type: "emergency"},
		},
	}
}

var profileColumns = []string{"id", "user_id", "monthly_income", "currency", "onboarding_completed", "created_at", "updated_at"}

func TestOnboardingService_Complete(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOnboardingService(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `first_name`=\\?,`last_name`=\\?").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `user_profiles` .* ON DUPLICATE KEY UPDATE").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `incomes`").WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectExec("INSERT INTO `expenses`").
		WithArgs(7, "Affitto", sqlmock.AnyArg(), "fixed", nil, "monthly", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `expenses`").
		WithArgs(7, "Spesa", sqlmock.AnyArg(), "variable", nil, "monthly", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO `savings_goals`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE `users`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(7, "alice", "alice@example.com", "x", "Alice", "Rossi", now, now))
	mock.ExpectQuery("SELECT \\* FROM `user_profiles` WHERE user_id = \\?").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(1, 7, "3000.00", "EUR", true, now, now))
	mock.ExpectCommit()

	res, err := svc.Complete(context.Background(), 7, onboardingPayload())
	require.NoError(t, err)
	assert.Equal(t, "Alice", res.User.FirstName)
	assert.Equal(t, "Rossi", res.User.LastName)
	assert.True(t, res.Profile.OnboardingCompleted)
	assert.Equal(t, "EUR", res.Profile.Currency)
	assert.True(t, res.Profile.MonthlyIncome.Equal(dec("3000")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardingService_Complete_EmptyLists(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOnboardingService(db)
	now := time.Now()

	// 空列表不产生 INSERT
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `user_profiles`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "alice", "a@example.com", "x", "Alice", "Rossi", now, now))
	mock.ExpectQuery("SELECT \\* FROM `user_profiles`").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(1, 7, "1200.00", "USD", true, now, now))
	mock.ExpectCommit()

	res, err := svc.Complete(context.Background(), 7, OnboardingInput{
		FirstName: "Alice", LastName: "Rossi", MonthlyIncome: decPtr("1200"), Currency: "usd",
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", res.Profile.Currency)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardingService_Complete_InvalidAmountWritesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOnboardingService(db)

	payload := onboardingPayload()
	payload.Incomes[1].Amount = decimal.Zero
	payload.SavingsGoals[0].TargetAmount = dec("-5")

	_, err := svc.Complete(context.Background(), 7, payload)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "incomes[1].amount")
	assert.Contains(t, verr.Fields, "savings_goals[0].target_amount")

	// 没有任何 SQL 被执行
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardingService_Complete_MissingRequired(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOnboardingService(db)

	_, err := svc.Complete(context.Background(), 7, OnboardingInput{
		Incomes: []IncomeInput{{Amount: dec("10"), Type: "lottery"}},
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "first_name")
	assert.Contains(t, verr.Fields, "last_name")
	assert.Contains(t, verr.Fields, "monthly_income")
	assert.Contains(t, verr.Fields, "incomes[0].name")
	assert.Contains(t, verr.Fields, "incomes[0].type")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardingService_Complete_ForeignCategory(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOnboardingService(db)

	foreign := uint(99)
	payload := onboardingPayload()
	payload.FixedExpenses[0].Category = &foreign

	mock.ExpectQuery("SELECT `id` FROM `categories` WHERE id IN \\(\\?\\) AND user_id = \\?").
		WithArgs(99, 7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Complete(context.Background(), 7, payload)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "fixed_expenses[0].category")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardingService_Complete_RollbackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOnboardingService(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `user_profiles`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `incomes`").WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := svc.Complete(context.Background(), 7, onboardingPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardingService_Status(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOnboardingService(db)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `user_profiles` WHERE user_id = \\?").
		WillReturnRows(sqlmock.NewRows(profileColumns))
	status, err := svc.Status(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, status.HasProfile)
	assert.False(t, status.OnboardingCompleted)

	mock.ExpectQuery("SELECT \\* FROM `user_profiles` WHERE user_id = \\?").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(1, 7, nil, "EUR", true, now, now))
	status, err = svc.Status(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, status.HasProfile)
	assert.True(t, status.OnboardingCompleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
