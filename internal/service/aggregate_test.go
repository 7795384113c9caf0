package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finance-bot/internal/model"
)

func entry(date time.Time, kind model.Kind, category, amount, comment string) model.Entry {
	return model.Entry{
		Date:     date,
		Kind:     kind,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Comment:  comment,
	}
}

func TestSum_BalanceIsIncomeMinusExpense(t *testing.T) {
	date := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	var entries []model.Entry
	for i := 0; i < 1000; i++ {
		entries = append(entries,
			entry(date, model.Income, "Business", "0.1", ""),
			entry(date, model.Expense, "Products", "0.01", ""))
	}

	totals := Sum(entries)
	require.True(t, decimal.RequireFromString("100").Equal(totals.Income), totals.Income.String())
	require.True(t, decimal.RequireFromString("10").Equal(totals.Expense), totals.Expense.String())
	require.True(t, totals.Income.Sub(totals.Expense).Equal(totals.Balance))
	require.Equal(t, "90", totals.Balance.String())
}

func TestSum_Empty(t *testing.T) {
	totals := Sum(nil)
	require.True(t, totals.Income.IsZero())
	require.True(t, totals.Expense.IsZero())
	require.True(t, totals.Balance.IsZero())
}

func TestFilter_Day(t *testing.T) {
	now := time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)
	inside := []model.Entry{
		entry(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), model.Income, "Business", "1", ""),
		entry(time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC), model.Expense, "Products", "2", ""),
	}
	outside := []model.Entry{
		entry(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), model.Income, "Business", "3", ""),
		entry(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), model.Income, "Business", "4", ""),
	}
	entries := []model.Entry{outside[0], inside[0], inside[1], outside[1]}

	require.Equal(t, inside, Filter(entries, now, Day))
}

func TestFilter_Windows(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := []model.Entry{
		entry(time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC), model.Income, "Business", "1", ""),
		entry(time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC), model.Income, "Business", "2", ""),
		entry(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), model.Income, "Business", "3", ""),
		entry(time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC), model.Income, "Business", "4", ""),
		entry(time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC), model.Income, "Business", "5", ""),
		entry(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), model.Income, "Business", "6", ""),
	}

	testTable := []struct {
		name   string
		window Window
		result []string
	}{
		{name: "Day", window: Day, result: []string{"6"}},
		{name: "Week", window: Week, result: []string{"4", "5", "6"}},
		{name: "Month", window: Month, result: []string{"3", "4", "5", "6"}},
		{name: "Year", window: Year, result: []string{"2", "3", "4", "5", "6"}},
		{name: "All", window: All, result: []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			var amounts []string
			for _, e := range Filter(entries, now, testCase.window) {
				amounts = append(amounts, e.Amount.String())
			}
			require.Equal(t, testCase.result, amounts)
		})
	}
}

func TestByCategory(t *testing.T) {
	date := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	entries := []model.Entry{
		entry(date, model.Expense, "Products", "300", ""),
		entry(date, model.Income, "Business", "1000", ""),
		entry(date, model.Expense, "Products", "50.5", ""),
		entry(date, model.Expense, "Housing", "700", ""),
	}

	b := ByCategory(entries)
	require.Equal(t, []string{"Business", "Housing", "Products"}, b.Categories)
	require.Len(t, b.Income, 3)
	require.Len(t, b.Expense, 3)
	require.Equal(t, "1000", b.Income["Business"].String())
	require.True(t, b.Expense["Business"].IsZero())
	require.True(t, b.Income["Products"].IsZero())
	require.Equal(t, "350.5", b.Expense["Products"].String())
	require.Equal(t, "700", b.Expense["Housing"].String())
}

func TestByCategory_Empty(t *testing.T) {
	b := ByCategory(nil)
	require.Empty(t, b.Categories)
	require.Empty(t, b.Income)
	require.Empty(t, b.Expense)
}
