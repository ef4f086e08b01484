package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

const (
	ModelBackendLinear = "linear"
	ModelBackendONNX   = "onnx"

	MoodStoreFile     = "file"
	MoodStoreSQLite   = "sqlite"
	MoodStorePostgres = "postgres"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	ModelBackend  string `env:"MODEL_BACKEND" envDefault:"linear"`
	ModelPath     string `env:"MODEL_PATH" envDefault:"models/burnout_classifier.yaml"`
	ScalerPath    string `env:"SCALER_PATH" envDefault:"models/scaler.yaml"`
	ONNXLibPath   string `env:"ONNXRUNTIME_SHARED_LIBRARY_PATH"`
	MoodStore     string `env:"MOOD_STORE" envDefault:"file"`
	MoodFile      string `env:"MOOD_FILE" envDefault:"mood_data.json"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"burnout.db"`
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	PredictRate   int    `env:"PREDICT_RATE_PER_MINUTE" envDefault:"30"`
	MetricsOn     bool   `env:"METRICS_ENABLED" envDefault:"true"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa combinaciones que env no puede expresar con tags.
func (c *Config) Validate() error {
	c.ModelBackend = strings.ToLower(strings.TrimSpace(c.ModelBackend))
	c.MoodStore = strings.ToLower(strings.TrimSpace(c.MoodStore))

	switch c.ModelBackend {
	case ModelBackendLinear, ModelBackendONNX:
	default:
		return fmt.Errorf("config: unknown MODEL_BACKEND %q", c.ModelBackend)
	}
	switch c.MoodStore {
	case MoodStoreFile, MoodStoreSQLite:
	case MoodStorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: MOOD_STORE=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("config: unknown MOOD_STORE %q", c.MoodStore)
	}
	if c.PredictRate < 0 {
		return fmt.Errorf("config: PREDICT_RATE_PER_MINUTE must be >= 0")
	}
	return nil
}
