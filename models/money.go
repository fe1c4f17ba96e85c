package models

import "github.com/shopspring/decimal"

func init() {
	// 金额在 JSON 中以数字输出，便于前端直接计算
	decimal.MarshalJSONWithoutQuotes = true
}

// Sum 累加金额，空切片返回 0
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
