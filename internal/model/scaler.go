package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scaler aplica la estandarización (x - mean) / scale ajustada en el entrenamiento.
type Scaler struct {
	Features []string  `yaml:"features" json:"features"`
	Mean     []float64 `yaml:"mean" json:"mean"`
	Scale    []float64 `yaml:"scale" json:"scale"`
}

// LoadScaler lee el artefacto del scaler. Acepta YAML o JSON.
func LoadScaler(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler: %w", err)
	}
	var s Scaler
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scaler: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scaler) validate() error {
	if err := checkFeatureOrder("scaler", s.Features); err != nil {
		return err
	}
	if len(s.Mean) != NumFeatures || len(s.Scale) != NumFeatures {
		return fmt.Errorf("scaler: mean/scale must have %d values, got %d/%d", NumFeatures, len(s.Mean), len(s.Scale))
	}
	return nil
}

// Transform devuelve un vector nuevo; x no se modifica.
func (s *Scaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("scaler: got %d features, want %d", len(x), len(s.Mean))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}
