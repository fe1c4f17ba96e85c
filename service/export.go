package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"monviso/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportTotals 导出汇总，支出按绝对值累计
type ExportTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// ComputeExportTotals 计算收入、支出与净额
func ComputeExportTotals(transactions []models.Transaction) ExportTotals {
	var income, expense []decimal.Decimal
	for _, t := range transactions {
		if t.Type == models.TransactionTypeIncome {
			income = append(income, t.Amount)
		} else {
			expense = append(expense, t.Amount.Abs())
		}
	}
	totals := ExportTotals{Income: models.Sum(income...), Expense: models.Sum(expense...)}
	totals.Net = totals.Income.Sub(totals.Expense)
	return totals
}

var exportHeaders = []string{"ID", "日期", "名称", "类型", "类别", "金额", "支付方式", "频率", "创建时间"}

// WriteTransactionsCSV 写出 CSV，带 BOM 以便 Excel 正确识别中文
func WriteTransactionsCSV(w io.Writer, transactions []models.Transaction) error {
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, t := range transactions {
		row := []string{
			fmt.Sprintf("%d", t.ID),
			t.Date.String(),
			t.Name,
			t.Type,
			t.Category,
			t.Amount.StringFixed(2),
			t.PaymentMethod,
			t.Frequency,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTransactionsXLSX 写出带样式和汇总行的 Excel
func WriteTransactionsXLSX(w io.Writer, transactions []models.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "交易流水"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"6366F1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 14)
	f.SetColWidth(sheetName, "G", "H", 12)
	f.SetColWidth(sheetName, "I", "I", 20)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, t := range transactions {
		row := i + 2
		amount, _ := t.Amount.Float64()
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Date.String())
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), amount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), t.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), t.Frequency)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), t.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), dataStyle)
	}

	// 汇总行：收入 / 支出 / 净额
	totals := ComputeExportTotals(transactions)
	summaryRow := len(transactions) + 2
	labels := []struct {
		label string
		value decimal.Decimal
	}{
		{"收入合计", totals.Income},
		{"支出合计", totals.Expense},
		{"净额", totals.Net},
	}
	for i, item := range labels {
		row := summaryRow + i
		value, _ := item.value.Float64()
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.label)
		f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), value)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), summaryStyle)
	}

	return f.Write(w)
}
