package repository

import (
	"context"
	"database/sql"
	"fmt"

	// Driver SQLite en Go puro (sin CGO).
	_ "modernc.org/sqlite"

	"burnout-check/internal/domain"
)

// SQLMoodRepository implementa MoodRepository sobre database/sql (SQLite).
type SQLMoodRepository struct {
	db *sql.DB
}

// OpenSQLite abre (o crea) la base SQLite en path y asegura el esquema.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite no admite escrituras concurrentes; una sola conexión evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err := EnsureSQLiteSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSQLiteSchema crea la tabla del diario si no existe.
func EnsureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS mood_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			entry_date TEXT NOT NULL,
			mood INTEGER NOT NULL,
			emoji TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create mood_entries: %w", err)
	}
	return nil
}

func NewSQLMoodRepository(db *sql.DB) *SQLMoodRepository {
	return &SQLMoodRepository{db: db}
}

func (r *SQLMoodRepository) Append(ctx context.Context, entry domain.MoodEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO mood_entries (entry_date, mood, emoji, note)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, insert, entry.Date, entry.Mood, entry.Emoji, entry.Note); err != nil {
		return fmt.Errorf("insert mood entry: %w", err)
	}

	const trim = `
		DELETE FROM mood_entries
		WHERE id NOT IN (
			SELECT id FROM mood_entries ORDER BY id DESC LIMIT ?
		)
	`
	if _, err := tx.ExecContext(ctx, trim, domain.MoodLogCap); err != nil {
		return fmt.Errorf("trim mood entries: %w", err)
	}
	return tx.Commit()
}

func (r *SQLMoodRepository) List(ctx context.Context) ([]domain.MoodEntry, error) {
	const query = `
		SELECT entry_date, mood, emoji, note
		FROM mood_entries
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.MoodEntry{}
	for rows.Next() {
		var e domain.MoodEntry
		if err := rows.Scan(&e.Date, &e.Mood, &e.Emoji, &e.Note); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
