package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transactionColumns = []string{"id", "user_id", "name", "amount", "type", "category", "date", "payment_method", "frequency", "created_at", "updated_at"}

func transactionRouter(userID uint) *gin.Engine {
	h := NewTransactionHandler()
	router := gin.New()
	router.Use(setUserIDMiddleware(userID))
	router.GET("/transactions", h.List)
	router.POST("/transactions", h.Create)
	router.GET("/transactions/export", h.Export)
	router.GET("/transactions/:id", h.Get)
	router.PUT("/transactions/:id", h.Update)
	router.DELETE("/transactions/:id", h.Delete)
	return router
}

func TestTransactionHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := doJSON(transactionRouter(1), "POST", "/transactions",
		`{"name":"Spesa","amount":-45.30,"type":"expense","category":"Cibo","date":"2024-03-15","payment_method":"card"}`)

	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "创建成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, -45.3, data["amount"])
	assert.Equal(t, "2024-03-15", data["date"])
	assert.Equal(t, "unique", data["frequency"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_Create_MissingDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	w := doJSON(transactionRouter(1), "POST", "/transactions", `{"name":"Spesa","amount":10,"type":"expense"}`)

	assert.Equal(t, 400, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Contains(t, data, "date")
}

func TestTransactionHandler_Create_BadDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	w := doJSON(transactionRouter(1), "POST", "/transactions", `{"name":"Spesa","amount":10,"type":"expense","date":"15/03/2024"}`)
	assert.Equal(t, 400, w.Code)
}

func TestTransactionHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `transactions` WHERE user_id = \\? ORDER BY date DESC, created_at DESC, id DESC").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(2, 1, "B", "5.00", "expense", "", "2024-03-15", "", "unique", now, now).
			AddRow(1, 1, "A", "7.00", "income", "", "2024-03-01", "", "unique", now, now))

	w := doJSON(transactionRouter(1), "GET", "/transactions", "")

	assert.Equal(t, 200, w.Code)
	list := decodeResponse(t, w)["data"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].(map[string]interface{})["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_List_BadDateFilter(t *testing.T) {
	w := doJSON(transactionRouter(1), "GET", "/transactions?start_date=yesterday", "")
	assert.Equal(t, 400, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Contains(t, data, "start_date")
}

func TestTransactionHandler_CrossTenant(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 不存在
	mock.ExpectQuery("SELECT \\* FROM `transactions` WHERE `transactions`.`id` = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows(transactionColumns))
	missing := doJSON(transactionRouter(1), "GET", "/transactions/999", "")

	// 属于其他用户：按 (id, user_id) 查询同样为空
	mock.ExpectQuery("SELECT \\* FROM `transactions` WHERE `transactions`.`id` = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows(transactionColumns))
	foreign := doJSON(transactionRouter(1), "DELETE", "/transactions/5", "")

	assert.Equal(t, 404, missing.Code)
	assert.Equal(t, 404, foreign.Code)
	assert.Equal(t, missing.Body.String(), foreign.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_InvalidID(t *testing.T) {
	w := doJSON(transactionRouter(1), "GET", "/transactions/abc", "")
	assert.Equal(t, 400, w.Code)
}

func TestTransactionHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `transactions` WHERE date >= \\? AND date <= \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(1, 1, "Spesa", "-45.30", "expense", "Cibo", "2024-03-15", "card", "unique", now, now))

	req := httptest.NewRequest("GET", "/transactions/export?start_date=2024-03-01&end_date=2024-03-31", nil)
	w := httptest.NewRecorder()
	transactionRouter(1).ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transactions_2024-03-01_2024-03-31.csv")
	assert.True(t, strings.Contains(w.Body.String(), "Spesa"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_ExportXLSX(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `transactions`").WillReturnRows(sqlmock.NewRows(transactionColumns))

	req := httptest.NewRequest("GET", "/transactions/export?format=xlsx", nil)
	w := httptest.NewRecorder()
	transactionRouter(1).ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	// xlsx 为 zip 格式
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_ExportBadFormat(t *testing.T) {
	w := doJSON(transactionRouter(1), "GET", "/transactions/export?format=pdf", "")
	assert.Equal(t, 400, w.Code)
}
