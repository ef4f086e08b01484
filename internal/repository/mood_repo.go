package repository

import (
	"context"

	"burnout-check/internal/domain"
)

// MoodRepository define el contrato de persistencia del diario de ánimo.
// Append debe dejar como máximo domain.MoodLogCap entradas.
type MoodRepository interface {
	Append(ctx context.Context, entry domain.MoodEntry) error
	List(ctx context.Context) ([]domain.MoodEntry, error)
}
