package repository

import (
	"context"

	"burnout-check/internal/domain"
)

// AssessmentRepository define el contrato del historial de evaluaciones.
type AssessmentRepository interface {
	Create(ctx context.Context, record domain.AssessmentRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.AssessmentRecord, error)
}

// PgAssessmentRepository implementa AssessmentRepository sobre Postgres.
type PgAssessmentRepository struct {
	pool PgxPool
}

func NewPgAssessmentRepository(pool PgxPool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Create(ctx context.Context, record domain.AssessmentRecord) error {
	const query = `
		INSERT INTO assessments (id, job_role, probability, risk_class, input, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.JobRole,
		record.Probability,
		record.RiskClass,
		record.Input,
		record.CreatedAt,
	)
	return err
}

func (r *PgAssessmentRepository) ListRecent(ctx context.Context, limit int) ([]domain.AssessmentRecord, error) {
	const query = `
		SELECT id, job_role, probability, risk_class, input, created_at
		FROM assessments
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.AssessmentRecord{}
	for rows.Next() {
		var rec domain.AssessmentRecord
		err = rows.Scan(
			&rec.ID,
			&rec.JobRole,
			&rec.Probability,
			&rec.RiskClass,
			&rec.Input,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
