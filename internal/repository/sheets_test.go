package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	values := [][]interface{}{
		{"Date", " Category ", "amount", "comment"},
		{"2024-01-01 09:00:00", "Business", "1000", "salary"},
		{"2024-01-02 10:00:00", "Business", 250.5},
		{},
	}

	rows := records(values)
	require.Equal(t, 3, len(rows))
	require.Equal(t, map[string]string{
		"date": "2024-01-01 09:00:00", "category": "Business", "amount": "1000", "comment": "salary",
	}, rows[0])
	require.Equal(t, "250.5", rows[1]["amount"])
	require.Equal(t, "", rows[1]["comment"])
	require.Equal(t, "", rows[2]["date"])
}

func TestRecords_Empty(t *testing.T) {
	require.Nil(t, records(nil))
	require.Empty(t, records([][]interface{}{{"date", "amount"}}))
}

func TestQuote(t *testing.T) {
	require.Equal(t, "'Income'", quote("Income"))
	require.Equal(t, "'Bob''s sheet'", quote("Bob's sheet"))
}

func TestSheetsLocalStorage_AppendRows(t *testing.T) {
	ctx := context.Background()
	s := NewSheetsLocalStorage()

	rows, err := s.Rows(ctx, "Income")
	require.NoError(t, err)
	require.Empty(t, rows)

	require.NoError(t, s.Append(ctx, "Income", []interface{}{"2024-01-01 09:00:00", "Business", "1000", ""}))
	rows, err = s.Rows(ctx, "Income")
	require.NoError(t, err)
	require.Equal(t, []map[string]string{
		{"date": "2024-01-01 09:00:00", "category": "Business", "amount": "1000", "comment": ""},
	}, rows)

	require.NoError(t, s.Update(ctx, "Balance", "A1:D1", []interface{}{"Overall balance", "700", "", ""}))
	v, ok := s.Range("Balance", "A1:D1")
	require.True(t, ok)
	require.Equal(t, "700", v[1])
}
