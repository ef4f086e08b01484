package model

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Classifier devuelve la probabilidad de la clase positiva (burnout) en [0, 1].
type Classifier interface {
	PredictProba(ctx context.Context, features []float64) (float64, error)
	Close() error
}

var ErrFeatureMismatch = errors.New("feature vector length mismatch")

// LogisticClassifier evalúa una regresión logística exportada como coeficientes.
type LogisticClassifier struct {
	Features  []string  `yaml:"features" json:"features"`
	Coef      []float64 `yaml:"coef" json:"coef"`
	Intercept float64   `yaml:"intercept" json:"intercept"`
}

// LoadLogistic lee el artefacto del clasificador lineal (YAML o JSON).
func LoadLogistic(path string) (*LogisticClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier: %w", err)
	}
	var c LogisticClassifier
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse classifier: %w", err)
	}
	if err := checkFeatureOrder("classifier", c.Features); err != nil {
		return nil, err
	}
	if len(c.Coef) != NumFeatures {
		return nil, fmt.Errorf("classifier: expected %d coefficients, got %d", NumFeatures, len(c.Coef))
	}
	return &c, nil
}

func (c *LogisticClassifier) PredictProba(_ context.Context, features []float64) (float64, error) {
	if len(features) != len(c.Coef) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureMismatch, len(features), len(c.Coef))
	}
	z := c.Intercept
	for i, w := range c.Coef {
		z += w * features[i]
	}
	return sigmoid(z), nil
}

func (c *LogisticClassifier) Close() error { return nil }

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
