package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"burnout-check/internal/domain"
)

// FileMoodRepository guarda el diario como un arreglo JSON plano en disco.
// El mutex serializa el read-modify-write dentro del proceso.
type FileMoodRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileMoodRepository(path string) *FileMoodRepository {
	return &FileMoodRepository{path: path}
}

func (r *FileMoodRepository) Append(_ context.Context, entry domain.MoodEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.read()
	if err != nil {
		return err
	}
	entries = domain.TrimMoodLog(append(entries, entry))
	return r.write(entries)
}

func (r *FileMoodRepository) List(_ context.Context) ([]domain.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *FileMoodRepository) read() ([]domain.MoodEntry, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.MoodEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read mood file: %w", err)
	}
	entries := []domain.MoodEntry{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode mood file: %w", err)
	}
	if entries == nil {
		entries = []domain.MoodEntry{}
	}
	return entries, nil
}

// write reemplaza el archivo de forma atómica (temp + rename).
func (r *FileMoodRepository) write(entries []domain.MoodEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode mood file: %w", err)
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".mood-*.json")
	if err != nil {
		return fmt.Errorf("create temp mood file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write mood file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close mood file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace mood file: %w", err)
	}
	return nil
}
