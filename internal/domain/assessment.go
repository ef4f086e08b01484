package domain

import "time"

// AssessmentInput son las métricas auto-reportadas que llegan desde el formulario.
type AssessmentInput struct {
	Age          int     `json:"age" form:"age"`
	Experience   int     `json:"experience" form:"experience"`
	WorkHours    int     `json:"work_hours" form:"work_hours"`
	RemoteRatio  int     `json:"remote_ratio" form:"remote_ratio"`
	Satisfaction float64 `json:"satisfaction" form:"satisfaction"`
	Stress       int     `json:"stress" form:"stress"`
	Gender       string  `json:"gender" form:"gender"`
	JobRole      string  `json:"job_role" form:"job_role"`
}

const (
	RiskClassLow      = "result-low"
	RiskClassModerate = "result-moderate"
	RiskClassHigh     = "result-high"
	RiskClassCritical = "result-critical"
)

// RiskTier es una de las cuatro bandas fijas de severidad.
type RiskTier struct {
	Label       string `json:"label"`
	Class       string `json:"class"`
	Description string `json:"description"`
}

type Factor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Raw   float64 `json:"raw"`
	Max   float64 `json:"max"`
	Icon  string  `json:"icon"`
	Tip   string  `json:"tip"`
}

type Recommendation struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

type PlanWeek struct {
	Week  int      `json:"week"`
	Title string   `json:"title"`
	Icon  string   `json:"icon"`
	Tasks []string `json:"tasks"`
}

// IndustryComparison compara las métricas del usuario contra el benchmark de su rol.
type IndustryComparison struct {
	Role           string  `json:"role"`
	RoleAvgScore   float64 `json:"role_avg_score"`
	GlobalAvgScore float64 `json:"global_avg_score"`
	SampleSize     int     `json:"sample_size"`
	ScoreDiff      float64 `json:"score_diff"`
	ScoreBetter    bool    `json:"score_better"`
	StressDiff     float64 `json:"stress_diff"`
	HoursDiff      float64 `json:"hours_diff"`
	UserScore      float64 `json:"user_score"`
	UserStress     float64 `json:"user_stress"`
	UserHours      float64 `json:"user_hours"`
}

// Assessment agrupa el resultado completo que se renderiza o se devuelve como JSON.
type Assessment struct {
	Input           AssessmentInput    `json:"input"`
	Probability     float64            `json:"probability"`
	Tier            RiskTier           `json:"tier"`
	Factors         []Factor           `json:"factor_breakdown"`
	Recommendations []Recommendation   `json:"recommendations"`
	ActionPlan      []PlanWeek         `json:"action_plan"`
	Industry        IndustryComparison `json:"industry"`
}

// AssessmentRecord es la versión persistida de una evaluación (historial opcional).
type AssessmentRecord struct {
	ID          string          `json:"id"`
	Input       AssessmentInput `json:"input"`
	JobRole     string          `json:"job_role"`
	Probability float64         `json:"probability"`
	RiskClass   string          `json:"risk_class"`
	CreatedAt   time.Time       `json:"created_at"`
}
