package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Exchange is one prompt and the answer it received.
type Exchange struct {
	ID        int64     `json:"id"`
	Prompt    string    `json:"prompt"`
	Answer    string    `json:"answer"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}

// ExchangeStore persists exchanges in SQLite.
type ExchangeStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewExchangeStore creates a store backed by db. The schema is created by db.InitDB.
func NewExchangeStore(db *sql.DB) *ExchangeStore {
	return &ExchangeStore{db: db, now: time.Now}
}

// Record saves an exchange and returns its id.
func (s *ExchangeStore) Record(ctx context.Context, prompt, answer, outcome string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO exchanges (prompt, answer, outcome, created_at) VALUES (?, ?, ?, ?)`,
		prompt, answer, outcome, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to insert exchange: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read exchange id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit exchanges, newest first.
func (s *ExchangeStore) Recent(ctx context.Context, limit int) ([]Exchange, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, prompt, answer, outcome, created_at FROM exchanges ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	exchanges := []Exchange{}
	for rows.Next() {
		var (
			e       Exchange
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Prompt, &e.Answer, &e.Outcome, &created); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		e.CreatedAt = time.UnixMilli(created)
		exchanges = append(exchanges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exchanges: %w", err)
	}
	return exchanges, nil
}

// Prune removes exchanges older than maxAge and reports how many were deleted.
func (s *ExchangeStore) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := s.now().Add(-maxAge).UnixMilli()
	res, err := s.db.ExecContext(ctx, `DELETE FROM exchanges WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune exchanges: %w", err)
	}
	return res.RowsAffected()
}
