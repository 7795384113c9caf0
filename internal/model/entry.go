package model

import (
	"crypto/md5"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is how entry dates are written to and read from the sheets
const DateLayout = "2006-01-02 15:04:05"

// amountPattern is a plain non-negative number. Exponents are not accepted: 1e2000000000 would
// take minutes to print
var amountPattern = regexp.MustCompile(`^\d{1,15}(\.\d{1,8})?$`)

// ParseAmount parses an amount as typed by a user or stored in a sheet. A decimal comma is accepted
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return decimal.NewFromString(s)
}

type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

func (k Kind) String() string {
	return string(k)
}

// Entry is one record of expenses or income. It is never mutated after creation
type Entry struct {
	Date     time.Time       `validate:"required"`
	Kind     Kind            `validate:"required,oneof=income expense"`
	Category string          `validate:"required"`
	Amount   decimal.Decimal `validate:"-"`
	Comment  string
}

// ID is a content hash of all five fields. Two entries with equal fields at the same second share an ID
func (e *Entry) ID() string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s-%s-%s-%s-%s",
		e.Date.Format(DateLayout), e.Kind, e.Category, e.Amount.String(), e.Comment)))
	return fmt.Sprintf("%x", sum)
}

// Row is the sheet representation: date, category, amount, comment
func (e *Entry) Row() []interface{} {
	return []interface{}{e.Date.Format(DateLayout), e.Category, e.Amount.String(), e.Comment}
}

// Totals of a set of entries. Balance is always Income minus Expense
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Breakdown is a chart-ready per-category split. Both maps hold every key of Categories
type Breakdown struct {
	Categories []string
	Income     map[string]decimal.Decimal
	Expense    map[string]decimal.Decimal
}
