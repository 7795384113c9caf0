package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chucky-1/finance-bot/internal/model"
)

// Window scopes aggregation to a period relative to now
type Window int

const (
	Day Window = iota
	Week
	Month
	Year
	All
)

func (w Window) String() string {
	switch w {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	case All:
		return "all"
	}
	return "unknown"
}

// Filter returns the entries of the window. Day is the calendar day of now, Week is the trailing
// 7 days, Month and Year are the calendar month and year of now
func Filter(entries []model.Entry, now time.Time, w Window) []model.Entry {
	filtered := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if inWindow(e.Date, now, w) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func inWindow(date, now time.Time, w Window) bool {
	date = date.In(now.Location())
	switch w {
	case Day:
		y1, m1, d1 := date.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case Week:
		return !date.Before(now.AddDate(0, 0, -7))
	case Month:
		return date.Year() == now.Year() && date.Month() == now.Month()
	case Year:
		return date.Year() == now.Year()
	case All:
		return true
	}
	return false
}

func Sum(entries []model.Entry) model.Totals {
	income, expense := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Kind {
		case model.Income:
			income = income.Add(e.Amount)
		case model.Expense:
			expense = expense.Add(e.Amount)
		}
	}
	return model.Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// ByCategory splits amounts per category. Categories are sorted and present on both sides
func ByCategory(entries []model.Entry) model.Breakdown {
	b := model.Breakdown{
		Income:  make(map[string]decimal.Decimal),
		Expense: make(map[string]decimal.Decimal),
	}
	for _, e := range entries {
		if _, ok := b.Income[e.Category]; !ok {
			b.Categories = append(b.Categories, e.Category)
			b.Income[e.Category] = decimal.Zero
			b.Expense[e.Category] = decimal.Zero
		}
		switch e.Kind {
		case model.Income:
			b.Income[e.Category] = b.Income[e.Category].Add(e.Amount)
		case model.Expense:
			b.Expense[e.Category] = b.Expense[e.Category].Add(e.Amount)
		}
	}
	sort.Strings(b.Categories)
	return b
}
