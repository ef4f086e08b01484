package repository

import (
	"context"
	"fmt"

	"burnout-check/internal/domain"
)

// PgMoodRepository implementa MoodRepository sobre Postgres.
type PgMoodRepository struct {
	pool PgxPool
}

func NewPgMoodRepository(pool PgxPool) *PgMoodRepository {
	return &PgMoodRepository{pool: pool}
}

// Append inserta y recorta en una transacción. El lock de tabla serializa
// appends concurrentes para que el recorte nunca deje más de domain.MoodLogCap filas.
func (r *PgMoodRepository) Append(ctx context.Context, entry domain.MoodEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin mood tx: %w", err)
	}

	const lock = `LOCK TABLE mood_entries IN SHARE ROW EXCLUSIVE MODE`
	if _, err := tx.Exec(ctx, lock); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("lock mood entries: %w", err)
	}

	const insert = `
		INSERT INTO mood_entries (entry_date, mood, emoji, note)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, insert, entry.Date, entry.Mood, entry.Emoji, entry.Note); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("insert mood entry: %w", err)
	}

	const trim = `
		DELETE FROM mood_entries
		WHERE id NOT IN (
			SELECT id FROM mood_entries ORDER BY id DESC LIMIT $1
		)
	`
	if _, err := tx.Exec(ctx, trim, domain.MoodLogCap); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("trim mood entries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit mood tx: %w", err)
	}
	return nil
}

func (r *PgMoodRepository) List(ctx context.Context) ([]domain.MoodEntry, error) {
	const query = `
		SELECT entry_date, mood, emoji, note
		FROM mood_entries
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
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
