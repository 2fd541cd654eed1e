package store

import (
	"database/sql"
	"fmt"
	"time"
)

// RunningTimer is the single persisted stopwatch. At most one timer
// runs at a time.
type RunningTimer struct {
	StartedAt   time.Time
	Description string
	Customer    string
}

// ElapsedMS returns the milliseconds elapsed since the timer started.
func (t *RunningTimer) ElapsedMS(now time.Time) int64 {
	ms := now.Sub(t.StartedAt).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// StartTimer persists a running stopwatch. It fails when one is
// already running.
func (s *Store) StartTimer(description, customer string, startedAt time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO timer (id, started_at, description, customer) VALUES (1, ?, ?, ?)`,
		startedAt.UTC().Format(time.RFC3339), description, customer,
	)
	if err != nil {
		return fmt.Errorf("start timer: %w", err)
	}
	return nil
}

// GetTimer returns the running stopwatch, or nil when none is running.
func (s *Store) GetTimer() (*RunningTimer, error) {
	var startedAt string
	var t RunningTimer
	err := s.db.QueryRow(`SELECT started_at, description, customer FROM timer WHERE id = 1`).
		Scan(&startedAt, &t.Description, &t.Customer)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get timer: %w", err)
	}
	t.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	return &t, nil
}

// ClearTimer removes the running stopwatch row, if any.
func (s *Store) ClearTimer() error {
	_, err := s.db.Exec(`DELETE FROM timer WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("clear timer: %w", err)
	}
	return nil
}
