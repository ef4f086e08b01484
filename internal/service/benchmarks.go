package service

import "burnout-check/internal/domain"

type benchmark struct {
	AvgScore   float64
	AvgStress  float64
	AvgHours   float64
	SampleSize int
}

// Promedios simulados por rol.
var industryBenchmarks = map[string]benchmark{
	"Engineer": {AvgScore: 42, AvgStress: 6.2, AvgHours: 47, SampleSize: 12400},
	"Analyst":  {AvgScore: 38, AvgStress: 5.8, AvgHours: 44, SampleSize: 8700},
	"HR":       {AvgScore: 35, AvgStress: 5.3, AvgHours: 42, SampleSize: 6200},
	"Manager":  {AvgScore: 52, AvgStress: 7.1, AvgHours: 51, SampleSize: 9800},
	"Sales":    {AvgScore: 48, AvgStress: 6.8, AvgHours: 49, SampleSize: 11300},
}

var globalBenchmark = benchmark{AvgScore: 43, AvgStress: 6.2, AvgHours: 46.5, SampleSize: 48400}

// IndustryComparison compara al usuario con el benchmark de su rol; si el rol
// no existe en la tabla se usa el promedio global, conservando el nombre recibido.
func IndustryComparison(jobRole string, probability, stress, workHours float64) domain.IndustryComparison {
	bench, ok := industryBenchmarks[jobRole]
	if !ok {
		bench = globalBenchmark
	}
	scoreDiff := round1(probability - bench.AvgScore)
	return domain.IndustryComparison{
		Role:           jobRole,
		RoleAvgScore:   bench.AvgScore,
		GlobalAvgScore: globalBenchmark.AvgScore,
		SampleSize:     bench.SampleSize,
		ScoreDiff:      scoreDiff,
		ScoreBetter:    scoreDiff < 0,
		StressDiff:     round1(stress - bench.AvgStress),
		HoursDiff:      round1(workHours - bench.AvgHours),
		UserScore:      round1(probability),
		UserStress:     stress,
		UserHours:      workHours,
	}
}
