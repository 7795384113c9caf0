package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubscribersLocalStorage_AddAll(t *testing.T) {
	s := NewSubscribersLocalStorage()

	for _, chatID := range []int64{125, 7, 125} {
		err := s.Add(context.Background(), chatID)
		if err != nil {
			t.Fatal(err)
		}
	}
	require.Equal(t, 2, len(s.m))

	chats, err := s.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []int64{7, 125}, chats)
}
