package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProgressPercentage(t *testing.T) {
	d := decimal.RequireFromString
	tests := []struct {
		current, target string
		expected        string
	}{
		{"0", "1000", "0"},
		{"250", "1000", "25"},
		{"500", "1000", "50"},
		{"1000", "1000", "100"},
		{"1500", "1000", "100"},
		{"1", "3", "33.33333333333333"},
		{"100", "0", "0"},
		{"0", "0", "0"},
	}
	for _, tt := range tests {
		got := ProgressPercentage(d(tt.current), d(tt.target))
		assert.Truef(t, d(tt.expected).Equal(got), "ProgressPercentage(%s, %s) = %s", tt.current, tt.target, got)
	}
}

func TestProgressPercentage_NeverAbove100(t *testing.T) {
	target := decimal.NewFromInt(200)
	for current := int64(0); current <= 1000; current += 37 {
		got := ProgressPercentage(decimal.NewFromInt(current), target)
		assert.True(t, got.LessThanOrEqual(decimal.NewFromInt(100)))
		assert.False(t, got.IsNegative())
	}
}

func TestSavingsGoal_ProgressPercentage(t *testing.T) {
	g := &SavingsGoal{TargetAmount: decimal.NewFromInt(400), CurrentAmount: decimal.NewFromInt(100)}
	assert.True(t, decimal.NewFromInt(25).Equal(g.ProgressPercentage()))
}

func TestSum(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(Sum()))
	total := Sum(decimal.RequireFromString("0.10"), decimal.RequireFromString("0.20"))
	assert.Equal(t, "0.3", total.String())
}
