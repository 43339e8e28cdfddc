package database

// migrationsSQL maps migration version numbers to their DDL. Migrations
// are forward-only; never edit an applied entry, add a new version.
var migrationsSQL = map[int]string{
	1: `
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			year INTEGER NOT NULL,
			name TEXT NOT NULL,
			rd REAL NOT NULL,
			gregorian TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			UNIQUE (year, name)
		);

		CREATE INDEX IF NOT EXISTS idx_events_year ON events(year);
	`,
}
