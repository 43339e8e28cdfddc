package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Event is one precomputed named calendar event: Easter, an equinox, an
// astronomical new year. RD is the fixed moment (fractional when the
// event has a time of day); Gregorian is its ISO-8601 rendering for
// human consumption.
type Event struct {
	ID        int64   `json:"id"`
	Year      int     `json:"year"`
	Name      string  `json:"name"`
	RD        float64 `json:"rd"`
	Gregorian string  `json:"gregorian"`
}

// ReplaceYear atomically replaces all stored events for a Gregorian
// year. Used by eventgen so regenerating a year is idempotent.
func (db *DB) ReplaceYear(ctx context.Context, year int, events []Event) error {
	return db.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM events WHERE year = ?", year); err != nil {
			return fmt.Errorf("clear year %d: %w", year, err)
		}
		for _, e := range events {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO events (year, name, rd, gregorian) VALUES (?, ?, ?, ?)",
				year, e.Name, e.RD, e.Gregorian,
			)
			if err != nil {
				return fmt.Errorf("insert event %s/%d: %w", e.Name, year, err)
			}
		}
		return nil
	})
}

// GetEventsByYear returns all stored events of a Gregorian year ordered
// by date. ErrNotFound when the year was never generated.
func (db *DB) GetEventsByYear(ctx context.Context, year int) ([]Event, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, year, name, rd, gregorian FROM events WHERE year = ? ORDER BY rd",
		year,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Year, &e.Name, &e.RD, &e.Gregorian); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	if len(events) == 0 {
		return nil, ErrNotFound
	}
	return events, nil
}

// GetEvent returns one named event of a year.
func (db *DB) GetEvent(ctx context.Context, year int, name string) (*Event, error) {
	var e Event
	err := db.QueryRowContext(ctx,
		"SELECT id, year, name, rd, gregorian FROM events WHERE year = ? AND name = ?",
		year, name,
	).Scan(&e.ID, &e.Year, &e.Name, &e.RD, &e.Gregorian)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query event: %w", err)
	}
	return &e, nil
}

// YearRange returns the lowest and highest generated years, or
// ErrNotFound when the table is empty.
func (db *DB) YearRange(ctx context.Context) (min, max int, err error) {
	var lo, hi sql.NullInt64
	err = db.QueryRowContext(ctx, "SELECT MIN(year), MAX(year) FROM events").Scan(&lo, &hi)
	if err != nil {
		return 0, 0, fmt.Errorf("query year range: %w", err)
	}
	if !lo.Valid {
		return 0, 0, ErrNotFound
	}
	return int(lo.Int64), int(hi.Int64), nil
}
