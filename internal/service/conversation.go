package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-bot/internal/model"
)

// Pending is a chosen kind and category waiting for the amount message
type Pending struct {
	Kind     model.Kind
	Category string
}

type Outcome int

const (
	OutcomeNoPending Outcome = iota
	OutcomeSaved
	OutcomeDuplicate
	OutcomeInvalidAmount
	OutcomeInvalidEntry
	OutcomeFailed
)

type EntryAdder interface {
	Add(ctx context.Context, entry model.Entry) error
}

// Conversation tracks users between choosing a category and sending the amount
type Conversation struct {
	mu       sync.Mutex
	pending  map[int64]Pending
	recorder EntryAdder
}

func NewConversation(recorder EntryAdder) *Conversation {
	return &Conversation{
		pending:  make(map[int64]Pending),
		recorder: recorder,
	}
}

func (c *Conversation) Choose(userID int64, kind model.Kind, category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[userID] = Pending{Kind: kind, Category: category}
}

func (c *Conversation) Pending(userID int64) (Pending, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pending[userID]
	return p, ok
}

// Complete consumes the pending input of the user whatever the text is. On a parse failure
// nothing is recorded and the user is back to idle
func (c *Conversation) Complete(ctx context.Context, userID int64, text string, now time.Time) (Outcome, model.Entry) {
	c.mu.Lock()
	p, ok := c.pending[userID]
	delete(c.pending, userID)
	c.mu.Unlock()
	if !ok {
		return OutcomeNoPending, model.Entry{}
	}

	amount, comment, err := ParseInput(text)
	if err != nil {
		logrus.Debugf("conversation: user %d entered invalid amount %q: %v", userID, text, err)
		return OutcomeInvalidAmount, model.Entry{}
	}

	entry := model.Entry{
		Date:     now.Truncate(time.Second),
		Kind:     p.Kind,
		Category: p.Category,
		Amount:   amount,
		Comment:  comment,
	}
	err = c.recorder.Add(ctx, entry)
	switch {
	case err == nil:
		return OutcomeSaved, entry
	case errors.Is(err, DuplicateEntryErr):
		return OutcomeDuplicate, entry
	case errors.Is(err, InvalidEntryErr):
		logrus.Infof("conversation: user %d entered invalid entry: %v", userID, err)
		return OutcomeInvalidEntry, entry
	default:
		logrus.Errorf("conversation couldn't add entry of user %d: %v", userID, err)
		return OutcomeFailed, entry
	}
}

// ParseInput splits "<amount> [comment]". The comment is free text of any length
func ParseInput(text string) (decimal.Decimal, string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, "", errors.New("empty input")
	}

	token, comment := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		token, comment = text[:i], strings.TrimSpace(text[i:])
	}

	amount, err := model.ParseAmount(token)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("couldn't parse amount: %w", err)
	}
	return amount, comment, nil
}
