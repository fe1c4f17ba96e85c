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

func TestIncomeService_CreateAndList(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewIncomeService(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `incomes`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	income, err := svc.Create(context.Background(), 7, IncomeInput{Name: "Stipendio", Amount: dec("2500"), Type: "salary"})
	require.NoError(t, err)
	assert.Equal(t, "monthly", income.Frequency)

	mock.ExpectQuery("SELECT \\* FROM `incomes` WHERE user_id = \\? ORDER BY id").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(incomeColumns).AddRow(1, 7, "Stipendio", "2500.00", "salary", false, "monthly", now, now))
	list, err := svc.List(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeService_RejectsNonPositive(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewIncomeService(db)

	for _, amount := range []string{"0", "-10", "0.001"} {
		_, err := svc.Create(context.Background(), 7, IncomeInput{Name: "x", Amount: dec(amount), Type: "other"})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), amount)
		assert.Contains(t, verr.Fields, "amount")
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseService_Create_ForeignCategory(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewExpenseService(db)

	cat := uint(99)
	mock.ExpectQuery("SELECT `id` FROM `categories` WHERE id IN \\(\\?\\) AND user_id = \\?").
		WithArgs(99, 7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Create(context.Background(), 7, ExpenseInput{Name: "Affitto", Amount: dec("800"), Type: "fixed", Category: &cat})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "category")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseService_Create_RequiresType(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewExpenseService(db)

	_, err := svc.Create(context.Background(), 7, ExpenseInput{Name: "Affitto", Amount: dec("800")})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "type")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseService_Create(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewExpenseService(db)

	cat := uint(4)
	mock.ExpectQuery("SELECT `id` FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	e, err := svc.Create(context.Background(), 7, ExpenseInput{Name: "Spesa", Amount: dec("300"), Type: "variable", Category: &cat})
	require.NoError(t, err)
	assert.Equal(t, "variable", e.Type)
	assert.Equal(t, &cat, e.CategoryID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSavingsGoalService_Get(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSavingsGoalService(db)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `savings_goals` WHERE `savings_goals`.`id` = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows(goalColumns).
			AddRow(1, 7, "Fondo", "3000.00", "1000.00", nil, "emergency", "medium", now, now))

	g, err := svc.Get(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.True(t, g.ProgressPercentage.Equal(decimal.RequireFromString("33.33")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSavingsGoalService_Create_DefaultPriority(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSavingsGoalService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `savings_goals`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	g, err := svc.Create(context.Background(), 7, SavingsGoalInput{Name: "Viaggio", TargetAmount: dec("1000"), Type: "vacation"})
	require.NoError(t, err)
	assert.Equal(t, "medium", g.Priority)
	assert.True(t, g.ProgressPercentage.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSavingsGoalService_Delete_Foreign(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSavingsGoalService(db)

	mock.ExpectQuery("SELECT \\* FROM `savings_goals`").WillReturnRows(sqlmock.NewRows(goalColumns))

	err := svc.Delete(context.Background(), 7, 1)
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	require.NoError(t, mock.ExpectationsWereMet())
}
