package model

import (
	"fmt"
	"strings"

	"burnout-check/internal/domain"
)

// FeatureNames es el orden fijo de columnas con el que se entrenaron scaler y clasificador.
// Las categorías base (Female, Analyst) se eliminaron en el one-hot.
var FeatureNames = []string{
	"Age",
	"Experience",
	"WorkHoursPerWeek",
	"RemoteRatio",
	"SatisfactionLevel",
	"StressLevel",
	"Gender_Male",
	"JobRole_Engineer",
	"JobRole_HR",
	"JobRole_Manager",
	"JobRole_Sales",
}

// NumFeatures es la longitud del vector que consume el modelo.
var NumFeatures = len(FeatureNames)

var jobRoleColumns = map[string]int{
	"engineer": 7,
	"hr":       8,
	"manager":  9,
	"sales":    10,
}

// Encode convierte la entrada en el vector de features. Valores categóricos
// desconocidos quedan codificados como la categoría base (todo ceros).
func Encode(in domain.AssessmentInput) []float64 {
	x := make([]float64, NumFeatures)
	x[0] = float64(in.Age)
	x[1] = float64(in.Experience)
	x[2] = float64(in.WorkHours)
	x[3] = float64(in.RemoteRatio)
	x[4] = in.Satisfaction
	x[5] = float64(in.Stress)

	if strings.EqualFold(strings.TrimSpace(in.Gender), "male") {
		x[6] = 1
	}
	if idx, ok := jobRoleColumns[strings.ToLower(strings.TrimSpace(in.JobRole))]; ok {
		x[idx] = 1
	}
	return x
}

func checkFeatureOrder(artifact string, names []string) error {
	if len(names) != NumFeatures {
		return fmt.Errorf("%s: expected %d features, got %d", artifact, NumFeatures, len(names))
	}
	for i, name := range names {
		if name != FeatureNames[i] {
			return fmt.Errorf("%s: feature %d is %q, want %q", artifact, i, name, FeatureNames[i])
		}
	}
	return nil
}
