package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/thinktide/timeaccount/internal/model"
)

// EntryFilter narrows ListEntries results. Zero values mean "no
// filter" for that field.
type EntryFilter struct {
	Customer string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// CreateEntry normalizes, validates and inserts a time entry,
// assigning a ULID when the id is empty.
func (s *Store) CreateEntry(e model.TimeEntry) (*model.TimeEntry, error) {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.ID == "" {
		e.ID = model.NewULID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO entries (id, description, customer, duration_ms, timestamp, type) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Description, e.Customer, e.DurationMS, e.Timestamp.UTC().Format(time.RFC3339), string(e.Type),
	)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return &e, nil
}

// GetEntry returns the entry with the given id, or nil when it does
// not exist.
func (s *Store) GetEntry(id string) (*model.TimeEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, description, customer, duration_ms, timestamp, type FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", id, err)
	}
	return e, nil
}

// GetLastEntry returns the most recently recorded entry, or nil when
// the store is empty.
func (s *Store) GetLastEntry() (*model.TimeEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, description, customer, duration_ms, timestamp, type
		 FROM entries ORDER BY timestamp DESC, id DESC LIMIT 1`)
	e, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last entry: %w", err)
	}
	return e, nil
}

// UpdateEntry rewrites the stored entry identified by e.ID.
func (s *Store) UpdateEntry(e model.TimeEntry) error {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE entries SET description = ?, customer = ?, duration_ms = ?, timestamp = ?, type = ? WHERE id = ?`,
		e.Description, e.Customer, e.DurationMS, e.Timestamp.UTC().Format(time.RFC3339), string(e.Type), e.ID,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("entry %s not found", e.ID)
	}
	return nil
}

// DeleteEntry removes the entry with the given id.
func (s *Store) DeleteEntry(id string) error {
	res, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("entry %s not found", id)
	}
	return nil
}

// ListEntries returns entries matching the filter, newest first.
func (s *Store) ListEntries(f EntryFilter) ([]model.TimeEntry, error) {
	query := `SELECT id, description, customer, duration_ms, timestamp, type FROM entries WHERE 1=1`
	var args []any

	if f.Customer != "" {
		query += ` AND customer = ?`
		args = append(args, f.Customer)
	}
	if f.From != nil {
		query += ` AND timestamp >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND timestamp <= ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY timestamp DESC, id DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []model.TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func scanEntry(scan func(...any) error) (*model.TimeEntry, error) {
	var e model.TimeEntry
	var ts, typ string
	if err := scan(&e.ID, &e.Description, &e.Customer, &e.DurationMS, &ts, &typ); err != nil {
		return nil, err
	}
	e.Timestamp, _ = time.Parse(time.RFC3339, ts)
	e.Type = model.EntryType(typ)
	return &e, nil
}
