package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

const (
	onnxInputName  = "float_input"
	onnxOutputName = "probabilities"
)

// ONNXClassifier ejecuta un clasificador exportado con skl2onnx (zipmap desactivado).
// La sesión reutiliza tensores preasignados, por eso Run se serializa con mu.
type ONNXClassifier struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]

	mu sync.Mutex
}

// LoadONNX inicializa onnxruntime y crea la sesión para el modelo en modelPath.
func LoadONNX(modelPath, libPath string) (*ONNXClassifier, error) {
	if modelPath == "" {
		return nil, errors.New("onnx: model path is empty")
	}
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("onnx: model file missing at %s: %w", modelPath, err)
	}

	lib := resolveSharedLibraryPath(libPath, filepath.Dir(modelPath))
	if lib == "" {
		return nil, errors.New("onnxruntime shared library not found; set ONNXRUNTIME_SHARED_LIBRARY_PATH or install the runtime")
	}
	ort.SetSharedLibraryPath(lib)
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(NumFeatures)))
	if err != nil {
		return nil, fmt.Errorf("allocate input tensor: %w", err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 2))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("allocate output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{onnxInputName},
		[]string{onnxOutputName},
		[]ort.Value{input},
		[]ort.Value{output},
		nil,
	)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &ONNXClassifier{session: session, input: input, output: output}, nil
}

func (c *ONNXClassifier) PredictProba(_ context.Context, features []float64) (float64, error) {
	if c == nil || c.session == nil {
		return 0, errors.New("onnx classifier not initialized")
	}
	if len(features) != NumFeatures {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureMismatch, len(features), NumFeatures)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	buf := c.input.GetData()
	for i, v := range features {
		buf[i] = float32(v)
	}
	if err := c.session.Run(); err != nil {
		return 0, fmt.Errorf("onnx run: %w", err)
	}
	probs := c.output.GetData()
	if len(probs) < 2 {
		return 0, fmt.Errorf("onnx: unexpected output size %d", len(probs))
	}
	return float64(probs[1]), nil
}

func (c *ONNXClassifier) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.session != nil {
		errs = append(errs, c.session.Destroy())
		c.session = nil
	}
	if c.input != nil {
		errs = append(errs, c.input.Destroy())
		c.input = nil
	}
	if c.output != nil {
		errs = append(errs, c.output.Destroy())
		c.output = nil
	}
	return errors.Join(errs...)
}

// resolveSharedLibraryPath busca la librería de onnxruntime: primero la ruta
// configurada, luego nombres comunes en directorios conocidos.
func resolveSharedLibraryPath(configured, modelDir string) string {
	if p := strings.TrimSpace(configured); p != "" {
		return p
	}
	if env := strings.TrimSpace(os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH")); env != "" {
		return env
	}

	names := []string{
		"libonnxruntime.dylib",
		"libonnxruntime.so",
		"onnxruntime.so",
		"onnxruntime.dll",
	}
	dirs := []string{
		modelDir,
		filepath.Join(modelDir, "lib"),
		"/opt/homebrew/lib",
		"/usr/local/lib",
		"/usr/lib",
	}
	for _, dir := range dirs {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}
