package database

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testDB(t)

	applied, err := db.Migrate(context.Background())
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if applied != 0 {
		t.Errorf("second migrate applied %d migrations, want 0", applied)
	}
}

func TestHealth(t *testing.T) {
	db := testDB(t)
	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health: %v", err)
	}
}

func TestReplaceYearAndGet(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	events := []Event{
		{Year: 2024, Name: "easter", RD: 738976, Gregorian: "2024-03-31"},
		{Year: 2024, Name: "march-equinox", RD: 738965.13, Gregorian: "2024-03-20T03:06:00.000+00:00"},
	}
	if err := db.ReplaceYear(ctx, 2024, events); err != nil {
		t.Fatalf("ReplaceYear: %v", err)
	}

	got, err := db.GetEventsByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("GetEventsByYear: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	// Ordered by date: the equinox precedes Easter.
	if got[0].Name != "march-equinox" || got[1].Name != "easter" {
		t.Errorf("order = %s, %s", got[0].Name, got[1].Name)
	}
}

func TestReplaceYearIsIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	events := []Event{{Year: 2024, Name: "easter", RD: 738976, Gregorian: "2024-03-31"}}
	for i := 0; i < 3; i++ {
		if err := db.ReplaceYear(ctx, 2024, events); err != nil {
			t.Fatalf("ReplaceYear #%d: %v", i, err)
		}
	}

	got, err := db.GetEventsByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("GetEventsByYear: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("events = %d, want 1", len(got))
	}
}

func TestGetEventsByYearNotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetEventsByYear(context.Background(), 1999)
	if !IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestGetEvent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	events := []Event{{Year: 2024, Name: "easter", RD: 738976, Gregorian: "2024-03-31"}}
	if err := db.ReplaceYear(ctx, 2024, events); err != nil {
		t.Fatalf("ReplaceYear: %v", err)
	}

	e, err := db.GetEvent(ctx, 2024, "easter")
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if e.RD != 738976 || e.Gregorian != "2024-03-31" {
		t.Errorf("event = %+v", e)
	}

	if _, err := db.GetEvent(ctx, 2024, "missing"); !IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestYearRange(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if _, _, err := db.YearRange(ctx); !IsNotFound(err) {
		t.Errorf("empty range error = %v, want not found", err)
	}

	for _, year := range []int{2022, 2024, 2023} {
		events := []Event{{Year: year, Name: "easter", RD: float64(738976 + year), Gregorian: "x"}}
		if err := db.ReplaceYear(ctx, year, events); err != nil {
			t.Fatalf("ReplaceYear: %v", err)
		}
	}

	lo, hi, err := db.YearRange(ctx)
	if err != nil {
		t.Fatalf("YearRange: %v", err)
	}
	if lo != 2022 || hi != 2024 {
		t.Errorf("range = %d..%d, want 2022..2024", lo, hi)
	}
}
