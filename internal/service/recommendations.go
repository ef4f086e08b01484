package service

import "burnout-check/internal/domain"

// Recommendations devuelve consejos según los factores de riesgo, en orden fijo:
// estrés, horas, satisfacción, remoto, probabilidad.
func Recommendations(probability, stress, workHours, satisfaction, remoteRatio float64) []domain.Recommendation {
	var recs []domain.Recommendation

	if stress >= 7 {
		recs = append(recs, domain.Recommendation{Icon: "🧘", Text: "Your stress level is very high. Try daily mindfulness or meditation - even 10 minutes can reduce cortisol levels significantly."})
	} else if stress >= 5 {
		recs = append(recs, domain.Recommendation{Icon: "🌿", Text: "Moderate stress detected. Consider short breathing exercises or walks during breaks to manage tension."})
	}

	if workHours >= 55 {
		recs = append(recs, domain.Recommendation{Icon: "⏰", Text: "You're working excessive hours. Set firm boundaries - try to keep your week under 45 hours and protect your weekends."})
	} else if workHours >= 45 {
		recs = append(recs, domain.Recommendation{Icon: "📅", Text: "Your work hours are above average. Plan your tasks with time-blocking to improve efficiency and avoid overtime."})
	}

	if satisfaction <= 2.0 {
		recs = append(recs, domain.Recommendation{Icon: "💬", Text: "Low job satisfaction is a key burnout driver. Have an honest conversation with your manager about your role and growth opportunities."})
	} else if satisfaction <= 3.0 {
		recs = append(recs, domain.Recommendation{Icon: "🎯", Text: "Your satisfaction could improve. Identify what motivates you most and seek projects aligned with those interests."})
	}

	if remoteRatio < 20 {
		recs = append(recs, domain.Recommendation{Icon: "🏠", Text: "Consider negotiating more remote work days. Hybrid work can reduce commute stress and improve work-life balance."})
	}

	if probability >= 50 {
		recs = append(recs, domain.Recommendation{Icon: "🩺", Text: "Your burnout risk is significant. Consider speaking with a mental health professional for personalized support."})
	}

	if probability < 20 {
		recs = append(recs, domain.Recommendation{Icon: "✨", Text: "Great news - your burnout risk is low! Keep maintaining your healthy work habits and personal boundaries."})
	} else {
		recs = append(recs, domain.Recommendation{Icon: "💪", Text: "Physical exercise 3-4 times a week is one of the most effective ways to combat burnout and boost resilience."})
	}

	return recs
}
