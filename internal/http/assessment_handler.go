package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"burnout-check/internal/domain"
	"burnout-check/internal/service"
)

const indexTemplate = "index.html"

var jobRoles = []string{"Engineer", "Analyst", "HR", "Manager", "Sales"}

// AssessmentHandler mantiene dependencias para el formulario y la API de evaluación.
type AssessmentHandler struct {
	logger *zap.Logger
	svc    *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, svc: svc}
}

// pageView son los datos que consume la plantilla index.html.
type pageView struct {
	Form              domain.AssessmentInput
	Roles             []string
	Result            string
	ResultClass       string
	ResultDescription string
	Probability       float64
	Factors           []domain.Factor
	Recommendations   []domain.Recommendation
	ActionPlan        []domain.PlanWeek
	Industry          *domain.IndustryComparison
}

func emptyPage() pageView {
	return pageView{
		Form:  domain.AssessmentInput{Gender: "Female", JobRole: "Engineer", Satisfaction: 3, Stress: 5},
		Roles: jobRoles,
	}
}

func errorPage(form domain.AssessmentInput, err error) pageView {
	view := emptyPage()
	if form.Gender != "" || form.JobRole != "" {
		view.Form = form
	}
	view.Result = "❌ Error"
	view.ResultClass = domain.RiskClassLow
	view.ResultDescription = fmt.Sprintf("An error occurred: %s. Please check your inputs.", err)
	return view
}

// Index maneja GET /.
func (h *AssessmentHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, emptyPage())
}

// PredictForm maneja POST /predict. Cualquier error se muestra como página genérica de fallo.
func (h *AssessmentHandler) PredictForm(c *gin.Context) {
	in, err := parseAssessmentForm(c)
	if err != nil {
		h.logger.Warn("invalid assessment form", zap.Error(err))
		c.HTML(http.StatusOK, indexTemplate, errorPage(in, err))
		return
	}

	result, err := h.svc.Assess(c.Request.Context(), in)
	if err != nil {
		h.logger.Error("assessment failed", zap.Error(err))
		c.HTML(http.StatusOK, indexTemplate, errorPage(in, err))
		return
	}

	view := emptyPage()
	view.Form = in
	view.Result = result.Tier.Label
	view.ResultClass = result.Tier.Class
	view.ResultDescription = result.Tier.Description
	view.Probability = result.Probability
	view.Factors = result.Factors
	view.Recommendations = result.Recommendations
	view.ActionPlan = result.ActionPlan
	view.Industry = &result.Industry
	c.HTML(http.StatusOK, indexTemplate, view)
}

// PredictJSON maneja POST /api/predict.
func (h *AssessmentHandler) PredictJSON(c *gin.Context) {
	var req domain.AssessmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid predict request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.svc.Assess(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not assess burnout risk"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessment": result})
}

// History maneja GET /api/assessments.
func (h *AssessmentHandler) History(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	records, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assessment history not configured"})
			return
		}
		h.logger.Error("list assessments failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list assessments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": records})
}

// parseAssessmentForm lee los campos del formulario. Lo que se pudo leer se
// devuelve igual para volver a llenar el formulario en caso de error.
func parseAssessmentForm(c *gin.Context) (domain.AssessmentInput, error) {
	var in domain.AssessmentInput
	var err error

	in.Gender = strings.TrimSpace(c.PostForm("gender"))
	in.JobRole = strings.TrimSpace(c.PostForm("job_role"))

	if in.Age, err = formInt(c, "age"); err != nil {
		return in, err
	}
	if in.Experience, err = formInt(c, "experience"); err != nil {
		return in, err
	}
	if in.WorkHours, err = formInt(c, "work_hours"); err != nil {
		return in, err
	}
	if in.RemoteRatio, err = formInt(c, "remote_ratio"); err != nil {
		return in, err
	}
	if in.Satisfaction, err = formFloat(c, "satisfaction"); err != nil {
		return in, err
	}
	if in.Stress, err = formInt(c, "stress"); err != nil {
		return in, err
	}
	if _, ok := c.GetPostForm("gender"); !ok {
		return in, errors.New("missing field gender")
	}
	if _, ok := c.GetPostForm("job_role"); !ok {
		return in, errors.New("missing field job_role")
	}
	return in, nil
}

func formInt(c *gin.Context, field string) (int, error) {
	raw, ok := c.GetPostForm(field)
	if !ok {
		return 0, fmt.Errorf("missing field %s", field)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, raw)
	}
	return n, nil
}

func formFloat(c *gin.Context, field string) (float64, error) {
	raw, ok := c.GetPostForm(field)
	if !ok {
		return 0, fmt.Errorf("missing field %s", field)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, raw)
	}
	return f, nil
}
