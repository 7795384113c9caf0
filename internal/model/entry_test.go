package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testEntry() Entry {
	return Entry{
		Date:     time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC),
		Kind:     Expense,
		Category: "Products",
		Amount:   decimal.RequireFromString("300"),
		Comment:  "groceries",
	}
}

func TestEntry_IDIsDeterministic(t *testing.T) {
	e1 := testEntry()
	e2 := testEntry()
	require.Equal(t, e1.ID(), e2.ID())
}

func TestEntry_IDIgnoresAmountScale(t *testing.T) {
	e1 := testEntry()
	e2 := testEntry()
	e2.Amount = decimal.RequireFromString("300.00")
	require.Equal(t, e1.ID(), e2.ID())
}

func TestEntry_IDChangesWithAnyField(t *testing.T) {
	base := testEntry()
	testTable := []struct {
		name   string
		modify func(e *Entry)
	}{
		{name: "date", modify: func(e *Entry) { e.Date = e.Date.Add(time.Second) }},
		{name: "kind", modify: func(e *Entry) { e.Kind = Income }},
		{name: "category", modify: func(e *Entry) { e.Category = "Housing" }},
		{name: "amount", modify: func(e *Entry) { e.Amount = decimal.RequireFromString("300.01") }},
		{name: "comment", modify: func(e *Entry) { e.Comment = "" }},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			e := testEntry()
			testCase.modify(&e)
			require.NotEqual(t, base.ID(), e.ID())
		})
	}
}

func TestEntry_Row(t *testing.T) {
	e := testEntry()
	require.Equal(t, []interface{}{"2024-01-01 18:00:00", "Products", "300", "groceries"}, e.Row())
}

func TestCategoryByCode(t *testing.T) {
	c, ok := CategoryByCode(Income, "passive")
	require.True(t, ok)
	require.Equal(t, "Passive Income", c.Name)

	_, ok = CategoryByCode(Income, "housing")
	require.False(t, ok)

	require.True(t, IsCategory(Expense, "Unexpected Expenses"))
	require.False(t, IsCategory(Expense, "Business"))
	require.Len(t, Categories(Expense), 9)
	require.Len(t, Categories(Income), 4)
}

func TestParseAmount(t *testing.T) {
	testTable := []struct {
		name   string
		input  string
		result string
		err    bool
	}{
		{name: "Integer", input: "1000", result: "1000"},
		{name: "Decimal point", input: "300.50", result: "300.5"},
		{name: "Decimal comma", input: " 3,5 ", result: "3.5"},
		{name: "Exponent", input: "1e2000000000", err: true},
		{name: "Negative", input: "-5", err: true},
		{name: "Sign", input: "+5", err: true},
		{name: "Empty", input: "", err: true},
		{name: "Text", input: "abc", err: true},
		{name: "Too many fraction digits", input: "1.123456789", err: true},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			amount, err := ParseAmount(testCase.input)
			if testCase.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.result, amount.String())
		})
	}
}
