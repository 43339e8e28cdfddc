// Command eventgen precomputes the named calendar events of a range of
// Gregorian years and stores them in the SQLite event tables served by
// the API.
//
// Usage:
//
//	eventgen -from 2020 -to 2030 [-db ./data/calendrica.db]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"calendrica/internal/almanac"
	"calendrica/internal/config"
	"calendrica/internal/database"
	"calendrica/internal/logger"
)

func main() {
	from := flag.Int("from", 2020, "First Gregorian year to generate")
	to := flag.Int("to", 2030, "Last Gregorian year to generate (inclusive)")
	dbPath := flag.String("db", "", "SQLite database path (default: DATABASE_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	log := logger.Setup(cfg)

	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}
	if *from > *to {
		log.Error("invalid range", slog.Int("from", *from), slog.Int("to", *to))
		os.Exit(1)
	}

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		log.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		log.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	total := 0
	for year := *from; year <= *to; year++ {
		events, err := almanac.ComputeYear(year)
		if err != nil {
			log.Error("event computation failed", slog.Int("year", year), slog.Any("error", err))
			os.Exit(1)
		}
		if err := db.ReplaceYear(ctx, year, events); err != nil {
			log.Error("failed to store events", slog.Int("year", year), slog.Any("error", err))
			os.Exit(1)
		}
		log.Info("year generated", slog.Int("year", year), slog.Int("events", len(events)))
		total += len(events)
	}

	log.Info("done",
		slog.Int("years", *to-*from+1),
		slog.Int("events", total),
	)
}
