package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	// Tráfico bajo: un formulario y un diario.
	poolCfg.MaxConns = 5
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id UUID PRIMARY KEY,
		job_role TEXT NOT NULL,
		probability DOUBLE PRECISION NOT NULL,
		risk_class TEXT NOT NULL,
		input JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS assessments_created_at_idx ON assessments (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS mood_entries (
		id BIGSERIAL PRIMARY KEY,
		entry_date TEXT NOT NULL,
		mood INTEGER NOT NULL,
		emoji TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT ''
	)`,
}

// EnsureSchema crea las tablas necesarias si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
