package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"burnout-check/internal/domain"
	"burnout-check/internal/repository"
)

// MoodInput es lo que envía el cliente; los campos ausentes toman valores por defecto.
type MoodInput struct {
	Mood  *int    `json:"mood"`
	Emoji *string `json:"emoji"`
	Note  *string `json:"note"`
}

// MoodObserver recibe cada entrada registrada (métricas).
type MoodObserver interface {
	ObserveMood(score int)
}

// MoodService mantiene el diario de ánimo acotado a domain.MoodLogCap entradas.
type MoodService struct {
	repo     repository.MoodRepository
	observer MoodObserver
	logger   *zap.Logger
	now      func() time.Time
}

func NewMoodService(repo repository.MoodRepository, observer MoodObserver, logger *zap.Logger) *MoodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MoodService{repo: repo, observer: observer, logger: logger, now: time.Now}
}

// Append completa los valores por defecto y la fecha local, y agrega la entrada.
// La nota se guarda tal cual llega.
func (s *MoodService) Append(ctx context.Context, in MoodInput) (domain.MoodEntry, error) {
	entry := domain.MoodEntry{
		Date:  s.now().Format(domain.MoodDateLayout),
		Mood:  domain.DefaultMoodScore,
		Emoji: domain.DefaultMoodEmoji,
	}
	if in.Mood != nil {
		entry.Mood = *in.Mood
	}
	if in.Emoji != nil {
		entry.Emoji = *in.Emoji
	}
	if in.Note != nil {
		entry.Note = *in.Note
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return domain.MoodEntry{}, fmt.Errorf("append mood: %w", err)
	}
	if s.observer != nil {
		s.observer.ObserveMood(entry.Mood)
	}
	s.logger.Debug("mood entry appended", zap.Int("mood", entry.Mood))
	return entry, nil
}

// List devuelve las entradas de la más vieja a la más reciente.
func (s *MoodService) List(ctx context.Context) ([]domain.MoodEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	if entries == nil {
		entries = []domain.MoodEntry{}
	}
	return entries, nil
}
