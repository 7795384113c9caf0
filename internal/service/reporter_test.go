package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finance-bot/internal/model"
)

type staticSource []model.Entry

func (s staticSource) Entries() []model.Entry {
	return s
}

type fakeRenderer struct {
	titles     []string
	breakdowns []model.Breakdown
	err        error
}

func (f *fakeRenderer) Render(title string, breakdown model.Breakdown) (string, error) {
	f.titles = append(f.titles, title)
	f.breakdowns = append(f.breakdowns, breakdown)
	if f.err != nil {
		return "", f.err
	}
	return "charts/" + title + ".png", nil
}

func scenarioEntries() staticSource {
	return staticSource{
		entry(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), model.Income, "Business", "1000", ""),
		entry(time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC), model.Expense, "Products", "300", "groceries"),
	}
}

func TestReporter_Daily(t *testing.T) {
	renderer := &fakeRenderer{}
	r := NewReporter(scenarioEntries(), renderer, "rub.")
	now := time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)

	report := r.Build(Day, now)
	require.Equal(t, "1000", report.Totals.Income.String())
	require.Equal(t, "300", report.Totals.Expense.String())
	require.Equal(t, "700", report.Totals.Balance.String())
	require.Empty(t, report.ChartPath)
	require.Empty(t, renderer.titles)

	expected := "🗓️ Report for 01 January 2024:\n\n" +
		"✅ Income:\n- Business: 1000 rub.\n\n" +
		"❌ Expenses:\n- Products: 300 rub. groceries\n\n" +
		"📌 Total:\nIncome: 1000 rub.\nExpenses: 300 rub.\nBalance for the day: +700 rub."
	require.Equal(t, expected, report.Text)
}

func TestReporter_DailyEmpty(t *testing.T) {
	r := NewReporter(staticSource{}, &fakeRenderer{}, "")
	report := r.Build(Day, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	require.Contains(t, report.Text, "✅ Income:\nNo entries")
	require.Contains(t, report.Text, "❌ Expenses:\nNo entries")
	require.Contains(t, report.Text, "Balance for the day: +0")
}

func TestReporter_Weekly(t *testing.T) {
	renderer := &fakeRenderer{}
	r := NewReporter(scenarioEntries(), renderer, "rub.")
	now := time.Date(2024, 1, 3, 20, 0, 0, 0, time.UTC)

	report := r.Build(Week, now)
	require.Equal(t, "Weekly report (27.12–03.01)", report.Title)
	require.Equal(t, "📆 Weekly report (27.12–03.01):\n\n✅ Income: 1000 rub.\n❌ Expenses: 300 rub.\n💰 Balance: +700 rub.", report.Text)
	require.Equal(t, "charts/Weekly report (27.12–03.01).png", report.ChartPath)
	require.Equal(t, []string{"Business", "Products"}, renderer.breakdowns[0].Categories)
}

func TestReporter_NegativeBalanceHasNoPlus(t *testing.T) {
	entries := staticSource{
		entry(time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC), model.Expense, "Housing", "250.75", ""),
	}
	r := NewReporter(entries, &fakeRenderer{}, "")
	report := r.Build(Month, time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC))
	require.Equal(t, "📈 Monthly report for May 2024:\n\n✅ Income: 0\n❌ Expenses: 250.75\n💳 Balance: -250.75", report.Text)
}

func TestReporter_ChartFailureKeepsText(t *testing.T) {
	r := NewReporter(scenarioEntries(), &fakeRenderer{err: errors.New("disk full")}, "")
	report := r.Build(Year, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.Empty(t, report.ChartPath)
	require.Equal(t, "📊 Yearly report for 2024:\n\n✅ Income: 1000\n❌ Expenses: 300\n💵 Balance: +700", report.Text)
}

func TestReporter_BalanceText(t *testing.T) {
	r := NewReporter(staticSource{}, &fakeRenderer{}, "rub.")
	require.Equal(t, "Your current balance: +700 rub.", r.BalanceText(decimal.NewFromInt(700)))
	require.Equal(t, "Your current balance: +0 rub.", r.BalanceText(decimal.Zero))
	require.Equal(t, "Your current balance: -12.5 rub.", r.BalanceText(decimal.RequireFromString("-12.5")))
}

func TestTitle(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	testTable := []struct {
		window Window
		result string
	}{
		{window: Day, result: "Report for 01 March 2024"},
		{window: Week, result: "Weekly report (23.02–01.03)"},
		{window: Month, result: "Monthly report for March 2024"},
		{window: Year, result: "Yearly report for 2024"},
	}

	for _, testCase := range testTable {
		t.Run(testCase.window.String(), func(t *testing.T) {
			require.Equal(t, testCase.result, Title(testCase.window, now))
		})
	}
}
