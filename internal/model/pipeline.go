package model

import (
	"context"
	"errors"
	"fmt"

	"burnout-check/internal/domain"
)

// Predictor estima la probabilidad de burnout (0-100) para una entrada.
type Predictor interface {
	Predict(ctx context.Context, in domain.AssessmentInput) (float64, error)
}

// Pipeline encadena encoding, scaler y clasificador, igual que en el entrenamiento.
type Pipeline struct {
	scaler     *Scaler
	classifier Classifier
}

// NewPipeline arma el pipeline. scaler puede ser nil si el clasificador ya
// incluye la estandarización (por ejemplo un pipeline ONNX completo).
func NewPipeline(scaler *Scaler, classifier Classifier) (*Pipeline, error) {
	if classifier == nil {
		return nil, errors.New("pipeline: classifier is required")
	}
	return &Pipeline{scaler: scaler, classifier: classifier}, nil
}

func (p *Pipeline) Predict(ctx context.Context, in domain.AssessmentInput) (float64, error) {
	x := Encode(in)
	if p.scaler != nil {
		scaled, err := p.scaler.Transform(x)
		if err != nil {
			return 0, fmt.Errorf("scale features: %w", err)
		}
		x = scaled
	}
	proba, err := p.classifier.PredictProba(ctx, x)
	if err != nil {
		return 0, fmt.Errorf("predict proba: %w", err)
	}
	return proba * 100, nil
}

func (p *Pipeline) Close() error {
	return p.classifier.Close()
}

// Load carga ambos artefactos según el backend configurado.
func Load(backend, modelPath, scalerPath, onnxLibPath string) (*Pipeline, error) {
	var scaler *Scaler
	if scalerPath != "" {
		s, err := LoadScaler(scalerPath)
		if err != nil {
			return nil, err
		}
		scaler = s
	}

	var classifier Classifier
	switch backend {
	case "", "linear":
		if scaler == nil {
			return nil, errors.New("pipeline: linear backend requires a scaler artifact")
		}
		c, err := LoadLogistic(modelPath)
		if err != nil {
			return nil, err
		}
		classifier = c
	case "onnx":
		c, err := LoadONNX(modelPath, onnxLibPath)
		if err != nil {
			return nil, err
		}
		classifier = c
	default:
		return nil, fmt.Errorf("pipeline: unknown backend %q", backend)
	}
	return NewPipeline(scaler, classifier)
}
