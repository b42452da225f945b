package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"askgemini/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ExchangeStore {
	t.Helper()
	database, err := db.InitDB(filepath.Join(t.TempDir(), "exchanges.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.CloseDB(database) })
	return NewExchangeStore(database)
}

func TestExchangeStore_RecordAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, p := range []string{"first", "second", "third"} {
		s.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		id, err := s.Record(ctx, p, "answer to "+p, "ok")
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	got, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "third", got[0].Prompt)
	assert.Equal(t, "answer to third", got[0].Answer)
	assert.Equal(t, "ok", got[0].Outcome)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(2*time.Minute)))
	assert.Equal(t, "second", got[1].Prompt)
}

func TestExchangeStore_RecentEmpty(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExchangeStore_Prune(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now.Add(-48 * time.Hour) }
	_, err := s.Record(ctx, "old", "a", "ok")
	require.NoError(t, err)
	s.now = func() time.Time { return now.Add(-time.Hour) }
	_, err = s.Record(ctx, "fresh", "b", "rate_limited")
	require.NoError(t, err)

	s.now = func() time.Time { return now }
	deleted, err := s.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].Prompt)
}
