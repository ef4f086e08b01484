package service

import (
	"math"
	"strconv"

	"burnout-check/internal/domain"
)

/*
========================
 Bandas de riesgo
========================
*/

var (
	tierLow = domain.RiskTier{
		Label:       "✅ Low Burnout Risk",
		Class:       domain.RiskClassLow,
		Description: "Your work-life balance appears healthy. Keep up the good practices!",
	}
	tierModerate = domain.RiskTier{
		Label:       "⚠️ Moderate Burnout Risk",
		Class:       domain.RiskClassModerate,
		Description: "Some warning signs detected. Consider adjusting your work habits.",
	}
	tierHigh = domain.RiskTier{
		Label:       "🔴 High Burnout Risk",
		Class:       domain.RiskClassHigh,
		Description: "Significant risk factors identified. Action is recommended to prevent burnout.",
	}
	tierCritical = domain.RiskTier{
		Label:       "🚨 Critical Burnout Risk",
		Class:       domain.RiskClassCritical,
		Description: "Urgent attention needed. Please prioritize your mental health and seek support.",
	}
)

// ClassifyRisk mapea la probabilidad (0-100) a una de las cuatro bandas.
// Los límites son semiabiertos: 20 ya es moderado, 45 alto y 70 crítico.
func ClassifyRisk(probability float64) domain.RiskTier {
	switch {
	case probability < 20:
		return tierLow
	case probability < 45:
		return tierModerate
	case probability < 70:
		return tierHigh
	default:
		return tierCritical
	}
}

/*
========================
 Desglose de factores
========================
*/

// FactorBreakdown calcula la contribución individual de cada factor al riesgo.
// El orden de salida es fijo: estrés, horas, satisfacción, presencialidad.
func FactorBreakdown(stress, workHours, satisfaction, remoteRatio float64) []domain.Factor {
	return []domain.Factor{
		{
			Name: "Stress Level", Value: stressScore(stress), Raw: stress, Max: 10,
			Icon: "😰", Tip: "High stress is the #1 burnout driver.",
		},
		{
			Name: "Work Hours", Value: hoursScore(workHours), Raw: workHours, Max: 80,
			Icon: "⏰", Tip: "Overwork erodes recovery capacity.",
		},
		{
			Name: "Low Satisfaction", Value: satisfactionScore(satisfaction), Raw: satisfaction, Max: 5,
			Icon: "😞", Tip: "Dissatisfaction fuels emotional exhaustion.",
		},
		{
			Name: "Office Overload", Value: officeScore(remoteRatio), Raw: remoteRatio, Max: 100,
			Icon: "🏢", Tip: "Commuting and lack of flexibility add strain.",
		},
	}
}

func stressScore(stress float64) float64 {
	switch {
	case stress >= 8:
		return 95
	case stress >= 6:
		return 70
	case stress >= 4:
		return 45
	default:
		return math.Max(10, stress*10)
	}
}

func hoursScore(hours float64) float64 {
	switch {
	case hours >= 60:
		return 95
	case hours >= 50:
		return 70
	case hours >= 45:
		return 50
	default:
		return math.Max(10, math.Min(40, (hours-20)*2))
	}
}

// satisfactionScore es inverso: baja satisfacción, mayor puntaje.
func satisfactionScore(satisfaction float64) float64 {
	return math.RoundToEven(math.Max(5, 100-satisfaction*20))
}

// officeScore es inverso: menos trabajo remoto, mayor puntaje.
func officeScore(remoteRatio float64) float64 {
	switch {
	case remoteRatio < 20:
		return 70
	case remoteRatio < 40:
		return 45
	case remoteRatio < 60:
		return 25
	default:
		return 10
	}
}

// round1 redondea a un decimal sobre el valor decimal exacto de v (mitad al par),
// no sobre v*10, que puede mover empates como 0.15.
func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
