package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"monviso/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() []models.Transaction {
	created := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	return []models.Transaction{
		{ID: 2, Name: "Spesa", Amount: dec("-45.30"), Type: "expense", Category: "Cibo", Date: models.NewDate(2024, 3, 15), PaymentMethod: "card", Frequency: "unique", CreatedAt: created},
		{ID: 1, Name: "Stipendio", Amount: dec("2500"), Type: "income", Date: models.NewDate(2024, 3, 1), Frequency: "monthly", CreatedAt: created},
	}
}

func TestComputeExportTotals(t *testing.T) {
	totals := ComputeExportTotals(exportFixture())
	assert.True(t, totals.Income.Equal(dec("2500")))
	assert.True(t, totals.Expense.Equal(dec("45.30")))
	assert.True(t, totals.Net.Equal(dec("2454.70")))

	empty := ComputeExportTotals(nil)
	assert.True(t, empty.Net.IsZero())
}

func TestWriteTransactionsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, exportFixture()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"))
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,日期,名称,类型,类别,金额,支付方式,频率,创建时间", lines[0])
	assert.Equal(t, "2,2024-03-15,Spesa,expense,Cibo,-45.30,card,unique,2024-03-15 10:00:00", lines[1])
}

func TestWriteTransactionsXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsXLSX(&buf, exportFixture()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("交易流水", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Spesa", name)

	label, err := f.GetCellValue("交易流水", "A6")
	require.NoError(t, err)
	assert.Equal(t, "净额", label)
}
