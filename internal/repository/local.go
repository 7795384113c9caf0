package repository

import (
	"context"
	"fmt"
	"sync"
)

// EntryHeader is the header row of the income and expense sheets
var EntryHeader = []interface{}{"date", "category", "amount", "comment"}

// SheetsLocalStorage keeps sheets in memory. It is used when the spreadsheet service is unreachable
type SheetsLocalStorage struct {
	mu     sync.RWMutex
	values map[string][][]interface{}
	ranges map[string][]interface{}
}

func NewSheetsLocalStorage() *SheetsLocalStorage {
	return &SheetsLocalStorage{
		values: make(map[string][][]interface{}),
		ranges: make(map[string][]interface{}),
	}
}

func (l *SheetsLocalStorage) Rows(_ context.Context, sheet string) ([]map[string]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	values, ok := l.values[sheet]
	if !ok {
		return nil, nil
	}
	return records(append([][]interface{}{EntryHeader}, values...)), nil
}

func (l *SheetsLocalStorage) Append(_ context.Context, sheet string, row []interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values[sheet] = append(l.values[sheet], append([]interface{}(nil), row...))
	return nil
}

func (l *SheetsLocalStorage) Update(_ context.Context, sheet, cellRange string, row []interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ranges[fmt.Sprintf("%s!%s", sheet, cellRange)] = append([]interface{}(nil), row...)
	return nil
}

// Range returns what was last written to sheet!cellRange
func (l *SheetsLocalStorage) Range(sheet, cellRange string) ([]interface{}, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.ranges[fmt.Sprintf("%s!%s", sheet, cellRange)]
	return v, ok
}
