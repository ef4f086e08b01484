package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"burnout-check/internal/domain"
	"burnout-check/internal/model"
	"burnout-check/internal/repository"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrHistoryDisabled = errors.New("assessment history disabled")
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 90
)

// AssessmentObserver recibe el resultado de cada evaluación (métricas).
type AssessmentObserver interface {
	ObserveAssessment(tierClass string, probability float64, duration time.Duration)
}

// AssessmentService orquesta predicción, reglas estáticas e historial opcional.
type AssessmentService struct {
	predictor model.Predictor
	history   repository.AssessmentRepository
	observer  AssessmentObserver
	logger    *zap.Logger
	now       func() time.Time
}

// NewAssessmentService crea el servicio. history y observer pueden ser nil.
func NewAssessmentService(
	predictor model.Predictor,
	history repository.AssessmentRepository,
	observer AssessmentObserver,
	logger *zap.Logger,
) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		predictor: predictor,
		history:   history,
		observer:  observer,
		logger:    logger,
		now:       time.Now,
	}
}

// Assess valida la entrada, estima la probabilidad y arma todo el contenido derivado.
func (s *AssessmentService) Assess(ctx context.Context, in domain.AssessmentInput) (domain.Assessment, error) {
	start := s.now()
	in.Gender = CanonicalGender(in.Gender)
	in.JobRole = CanonicalJobRole(in.JobRole)
	if err := ValidateInput(in); err != nil {
		return domain.Assessment{}, err
	}

	probability, err := s.predictor.Predict(ctx, in)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("predict burnout: %w", err)
	}
	if math.IsNaN(probability) || math.IsInf(probability, 0) {
		return domain.Assessment{}, fmt.Errorf("predict burnout: non-finite probability")
	}

	result := BuildAssessment(in, probability)

	if s.observer != nil {
		s.observer.ObserveAssessment(result.Tier.Class, probability, s.now().Sub(start))
	}
	s.saveHistory(ctx, in, result)
	return result, nil
}

// BuildAssessment aplica las reglas estáticas sobre una probabilidad ya calculada.
func BuildAssessment(in domain.AssessmentInput, probability float64) domain.Assessment {
	stress := float64(in.Stress)
	hours := float64(in.WorkHours)
	remote := float64(in.RemoteRatio)
	return domain.Assessment{
		Input:           in,
		Probability:     round1(probability),
		Tier:            ClassifyRisk(probability),
		Factors:         FactorBreakdown(stress, hours, in.Satisfaction, remote),
		Recommendations: Recommendations(probability, stress, hours, in.Satisfaction, remote),
		ActionPlan:      ActionPlan(probability, stress, hours, in.Satisfaction, remote),
		Industry:        IndustryComparison(in.JobRole, probability, stress, hours),
	}
}

func (s *AssessmentService) saveHistory(ctx context.Context, in domain.AssessmentInput, result domain.Assessment) {
	if s.history == nil {
		return
	}
	record := domain.AssessmentRecord{
		ID:          uuid.NewString(),
		Input:       in,
		JobRole:     in.JobRole,
		Probability: result.Probability,
		RiskClass:   result.Tier.Class,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.history.Create(ctx, record); err != nil {
		s.logger.Warn("save assessment history failed", zap.Error(err))
	}
}

// History devuelve las evaluaciones más recientes.
func (s *AssessmentService) History(ctx context.Context, limit int) ([]domain.AssessmentRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.history.ListRecent(ctx, limit)
}

// CanonicalJobRole devuelve el nombre de rol de la tabla de benchmarks sin
// importar mayúsculas. Roles desconocidos solo se recortan.
func CanonicalJobRole(role string) string {
	role = strings.TrimSpace(role)
	for name := range industryBenchmarks {
		if strings.EqualFold(name, role) {
			return name
		}
	}
	return role
}

// CanonicalGender normaliza "male"/"female" a la forma con mayúscula inicial.
func CanonicalGender(gender string) string {
	gender = strings.TrimSpace(gender)
	for _, name := range []string{"Female", "Male"} {
		if strings.EqualFold(name, gender) {
			return name
		}
	}
	return gender
}

type inputRange struct {
	field    string
	value    float64
	min, max float64
}

// ValidateInput revisa rangos plausibles; el error envuelve ErrInvalidInput.
func ValidateInput(in domain.AssessmentInput) error {
	checks := []inputRange{
		{"age", float64(in.Age), 16, 100},
		{"experience", float64(in.Experience), 0, 60},
		{"work_hours", float64(in.WorkHours), 0, 120},
		{"remote_ratio", float64(in.RemoteRatio), 0, 100},
		{"satisfaction", in.Satisfaction, 1, 5},
		{"stress", float64(in.Stress), 0, 10},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || c.value < c.min || c.value > c.max {
			return fmt.Errorf("%w: %s must be between %g and %g", ErrInvalidInput, c.field, c.min, c.max)
		}
	}
	if strings.TrimSpace(in.Gender) == "" {
		return fmt.Errorf("%w: gender is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.JobRole) == "" {
		return fmt.Errorf("%w: job_role is required", ErrInvalidInput)
	}
	return nil
}
