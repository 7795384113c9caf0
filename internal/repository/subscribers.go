package repository

import (
	"context"
	"sort"
	"sync"
)

// Subscribers are the chats that receive scheduled reports. They live as long as the process
type Subscribers interface {
	Add(ctx context.Context, chatID int64) error
	All(ctx context.Context) ([]int64, error)
}

type SubscribersLocalStorage struct {
	mu sync.RWMutex
	m  map[int64]struct{}
}

func NewSubscribersLocalStorage() *SubscribersLocalStorage {
	return &SubscribersLocalStorage{
		m: make(map[int64]struct{}),
	}
}

func (l *SubscribersLocalStorage) Add(_ context.Context, chatID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[chatID] = struct{}{}
	return nil
}

func (l *SubscribersLocalStorage) All(_ context.Context) ([]int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	chats := make([]int64, 0, len(l.m))
	for chatID := range l.m {
		chats = append(chats, chatID)
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i] < chats[j] })
	return chats, nil
}
