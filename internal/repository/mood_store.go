package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"burnout-check/internal/config"
)

// OpenMoodStore elige el backend del diario según cfg.MoodStore.
// El pool solo se usa con el backend postgres. El cierre devuelto nunca es nil.
func OpenMoodStore(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (MoodRepository, func() error, error) {
	noop := func() error { return nil }
	switch cfg.MoodStore {
	case config.MoodStoreFile:
		return NewFileMoodRepository(cfg.MoodFile), noop, nil
	case config.MoodStoreSQLite:
		db, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return NewSQLMoodRepository(db), db.Close, nil
	case config.MoodStorePostgres:
		if pool == nil {
			return nil, noop, errors.New("postgres mood store requires a database pool")
		}
		return NewPgMoodRepository(pool), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown mood store %q", cfg.MoodStore)
	}
}
