package service

import "burnout-check/internal/domain"

// ActionPlan arma el plan progresivo de 4 semanas. Cada semana tiene tareas
// fijas y tareas condicionales insertadas en posiciones fijas.
func ActionPlan(probability, stress, workHours, satisfaction, remoteRatio float64) []domain.PlanWeek {
	// Semana 1: conciencia
	w1 := []string{"Track your daily energy levels in a journal (morning, midday, evening)"}
	if stress >= 6 {
		w1 = append(w1, "Start a 5-minute breathing exercise every morning before work")
	}
	if workHours >= 50 {
		w1 = append(w1, "Log your actual working hours every day - no estimating")
	}
	w1 = append(w1, "Identify your top 3 workplace frustrations and write them down")

	// Semana 2: pequeños cambios
	var w2 []string
	if stress >= 5 {
		w2 = append(w2, "Add a 10-minute guided meditation to your daily routine")
	}
	if workHours >= 45 {
		w2 = append(w2, "Set a hard stop time and leave work on time at least 3 days this week")
	}
	w2 = append(w2, "Take a proper lunch break away from your desk every day")
	if satisfaction <= 3 {
		w2 = append(w2, "Schedule a 1-on-1 with your manager to discuss workload and satisfaction")
	}
	w2 = append(w2, "Exercise at least 3 times this week - even a 20-min walk counts")

	// Semana 3: hábitos
	w3 := []string{"Practice time-blocking: plan tomorrow's top 3 tasks every evening"}
	if stress >= 6 {
		w3 = append(w3, "Try a digital detox: no screens for 1 hour before bed")
	}
	if remoteRatio < 30 {
		w3 = append(w3, "Propose 1-2 days of remote work to your team lead")
	}
	w3 = append(w3,
		"Reconnect with a hobby or activity you've been neglecting",
		"Say 'no' to at least one non-essential request this week",
	)

	// Semana 4: sostener y evaluar
	w4 := []string{
		"Re-take the burnout assessment and compare your score to Week 1",
		"Review your energy journal: identify patterns and peak/low times",
	}
	if probability >= 50 {
		w4 = append(w4, "If score hasn't improved, book a consultation with a health professional")
	}
	w4 = append(w4,
		"Create a personal wellness plan for the next 3 months",
		"Celebrate every small improvement - progress matters more than perfection",
	)

	return []domain.PlanWeek{
		{Week: 1, Title: "Awareness & Baseline", Icon: "🔍", Tasks: w1},
		{Week: 2, Title: "Small Changes", Icon: "🌱", Tasks: w2},
		{Week: 3, Title: "Building Habits", Icon: "🔧", Tasks: w3},
		{Week: 4, Title: "Sustain & Evaluate", Icon: "🏆", Tasks: w4},
	}
}
