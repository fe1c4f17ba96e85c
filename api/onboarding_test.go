package api

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{"id", "user_id", "monthly_income", "currency", "onboarding_completed", "created_at", "updated_at"}

func onboardingRouter(userID uint) *gin.Engine {
	h := NewOnboardingHandler()
	router := gin.New()
	router.Use(setUserIDMiddleware(userID))
	router.POST("/onboarding", h.Complete)
	router.GET("/onboarding/status", h.Status)
	return router
}

func TestOnboardingHandler_Complete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `user_profiles`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `incomes`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "alice", "a@example.com", "x", "Alice", "Rossi", now, now))
	mock.ExpectQuery("SELECT \\* FROM `user_profiles`").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(1, 1, "3000.00", "EUR", true, now, now))
	mock.ExpectCommit()

	body := `{
		"first_name": "Alice",
		"last_name": "Rossi",
		"monthly_income": 3000,
		"incomes": [{"name": "Stipendio", "amount": 3000, "type": "salary", "is_primary": true}],
		"fixed_expenses": [{"name": "Affitto", "amount": 1000}]
	}`
	w := doJSON(onboardingRouter(1), "POST", "/onboarding", body)

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	profile := data["profile"].(map[string]interface{})
	assert.Equal(t, true, profile["onboarding_completed"])
	assert.Equal(t, float64(3000), profile["monthly_income"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardingHandler_Complete_NonPositiveAmount(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	body := `{
		"first_name": "Alice",
		"last_name": "Rossi",
		"monthly_income": 3000,
		"incomes": [{"name": "Stipendio", "amount": 3000, "type": "salary"}],
		"variable_expenses": [{"name": "Spesa", "amount": 0}]
	}`
	w := doJSON(onboardingRouter(1), "POST", "/onboarding", body)

	assert.Equal(t, 400, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Contains(t, data, "variable_expenses[0].amount")
	// 校验失败时不开启事务
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardingHandler_Status(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `user_profiles`").WillReturnRows(sqlmock.NewRows(profileColumns))

	w := doJSON(onboardingRouter(1), "GET", "/onboarding/status", "")

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, false, data["has_profile"])
	assert.Equal(t, false, data["onboarding_completed"])
	require.NoError(t, mock.ExpectationsWereMet())
}
