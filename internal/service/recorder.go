package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-bot/internal/model"
	"github.com/chucky-1/finance-bot/internal/repository"
)

var (
	DuplicateEntryErr = errors.New("entry already exists")
	InvalidEntryErr   = errors.New("invalid entry")
)

// maxExponent bounds amounts to what ParseAmount accepts. Printing 1e2000000000 never finishes
const maxExponent = 15

type SheetNames struct {
	Income  string
	Expense string
	Summary string
}

// Recorder is the in-memory record store. It is a read-through cache of the income and expense sheets
// and writes new entries through to them before keeping them in memory
type Recorder struct {
	repo      repository.Sheets
	sheets    SheetNames
	location  *time.Location
	validator *validator.Validate

	// writeMu serializes refreshes and appends
	writeMu sync.Mutex
	mu      sync.RWMutex
	entries []model.Entry
}

func NewRecorder(repo repository.Sheets, sheets SheetNames, location *time.Location) *Recorder {
	return &Recorder{
		repo:      repo,
		sheets:    sheets,
		location:  location,
		validator: validator.New(),
	}
}

// Entries returns the current snapshot sorted by date. The slice must not be modified
func (r *Recorder) Entries() []model.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries
}

// Refresh replaces the in-memory entries with what the sheets hold. A failing sheet is logged and skipped
func (r *Recorder) Refresh(ctx context.Context) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	var entries []model.Entry
	for _, s := range []struct {
		sheet string
		kind  model.Kind
	}{
		{sheet: r.sheets.Income, kind: model.Income},
		{sheet: r.sheets.Expense, kind: model.Expense},
	} {
		rows, err := r.repo.Rows(ctx, s.sheet)
		if err != nil {
			logrus.Errorf("recorder couldn't load %s sheet %s: %v", s.kind, s.sheet, err)
			continue
		}
		for _, row := range rows {
			if row["date"] == "" || row["amount"] == "" {
				logrus.Debugf("recorder skipped %s row without date or amount: %v", s.kind, row)
				continue
			}
			entry, err := r.parse(row, s.kind)
			if err != nil {
				logrus.Errorf("recorder skipped %s row %v: %v", s.kind, row, err)
				continue
			}
			entries = append(entries, entry)
		}
	}
	sortByDate(entries)

	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()
	logrus.Infof("recorder loaded %d entries", len(entries))
}

func (r *Recorder) parse(row map[string]string, kind model.Kind) (model.Entry, error) {
	date, err := time.ParseInLocation(model.DateLayout, row["date"], r.location)
	if err != nil {
		return model.Entry{}, fmt.Errorf("couldn't parse date: %w", err)
	}
	amount, err := model.ParseAmount(row["amount"])
	if err != nil {
		return model.Entry{}, fmt.Errorf("couldn't parse amount: %w", err)
	}
	return model.Entry{
		Date:     date,
		Kind:     kind,
		Category: row["category"],
		Amount:   amount,
		Comment:  row["comment"],
	}, nil
}

// Add writes the entry to its sheet and then keeps it in memory. It returns DuplicateEntryErr
// without writing when an entry with the same ID is already stored
func (r *Recorder) Add(ctx context.Context, entry model.Entry) error {
	entry.Date = entry.Date.Truncate(time.Second)
	if err := r.validate(entry); err != nil {
		return err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	id := entry.ID()
	for _, e := range r.Entries() {
		if e.ID() == id {
			return DuplicateEntryErr
		}
	}

	sheet := r.sheets.Income
	if entry.Kind == model.Expense {
		sheet = r.sheets.Expense
	}
	if err := r.repo.Append(ctx, sheet, entry.Row()); err != nil {
		return fmt.Errorf("recorder couldn't append entry: %w", err)
	}

	r.mu.Lock()
	entries := make([]model.Entry, len(r.entries), len(r.entries)+1)
	copy(entries, r.entries)
	entries = append(entries, entry)
	sortByDate(entries)
	r.entries = entries
	r.mu.Unlock()

	logrus.Debugf("recorder added %s entry %s: %s", entry.Kind, entry.Category, entry.Amount)
	return nil
}

func (r *Recorder) validate(entry model.Entry) error {
	if err := r.validator.Struct(entry); err != nil {
		return fmt.Errorf("%w: %v", InvalidEntryErr, err)
	}
	if exp := entry.Amount.Exponent(); exp > maxExponent || exp < -maxExponent {
		return fmt.Errorf("%w: amount exponent %d out of range", InvalidEntryErr, exp)
	}
	if entry.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", InvalidEntryErr, entry.Amount)
	}
	if !model.IsCategory(entry.Kind, entry.Category) {
		return fmt.Errorf("%w: unknown %s category %s", InvalidEntryErr, entry.Kind, entry.Category)
	}
	return nil
}

// Balance is all income minus all expenses
func (r *Recorder) Balance() decimal.Decimal {
	return Sum(r.Entries()).Balance
}

// WriteSummary writes overall, weekly, monthly and yearly totals to the summary sheet
func (r *Recorder) WriteSummary(ctx context.Context, now time.Time) error {
	entries := r.Entries()
	overall := Sum(entries)
	rows := [][]interface{}{
		{"Overall balance", overall.Balance.String(), "", ""},
		summaryRow("Week", Sum(Filter(entries, now, Week))),
		summaryRow("Month", Sum(Filter(entries, now, Month))),
		summaryRow("Year", Sum(Filter(entries, now, Year))),
	}
	for i, row := range rows {
		cellRange := fmt.Sprintf("A%d:D%d", i+1, i+1)
		if err := r.repo.Update(ctx, r.sheets.Summary, cellRange, row); err != nil {
			return fmt.Errorf("recorder couldn't write summary: %w", err)
		}
	}
	return nil
}

func summaryRow(label string, t model.Totals) []interface{} {
	return []interface{}{label, t.Income.String(), t.Expense.String(), t.Balance.String()}
}

func sortByDate(entries []model.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}
