package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"burnout-check/internal/domain"
	"burnout-check/internal/metrics"
	"burnout-check/internal/service"
)

type stubPredictor struct {
	probability float64
	err         error
}

func (s *stubPredictor) Predict(_ context.Context, _ domain.AssessmentInput) (float64, error) {
	return s.probability, s.err
}

type memoryMoodRepo struct {
	entries []domain.MoodEntry
	err     error
}

func (m *memoryMoodRepo) Append(_ context.Context, entry domain.MoodEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = domain.TrimMoodLog(append(m.entries, entry))
	return nil
}

func (m *memoryMoodRepo) List(_ context.Context) ([]domain.MoodEntry, error) {
	return m.entries, m.err
}

type mockLimiter struct {
	allow bool
}

func (m *mockLimiter) Allow(_ string) bool {
	return m.allow
}

type testDeps struct {
	predictor *stubPredictor
	moods     *memoryMoodRepo
	limiter   service.RateLimiter
	metrics   *metrics.Metrics
}

func setupRouter(d testDeps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if d.predictor == nil {
		d.predictor = &stubPredictor{probability: 50}
	}
	if d.moods == nil {
		d.moods = &memoryMoodRepo{}
	}
	logger := zap.NewNop()
	assessSvc := service.NewAssessmentService(d.predictor, nil, nil, logger)
	moodSvc := service.NewMoodService(d.moods, nil, logger)
	return NewRouter(RouterDeps{
		Logger:      logger,
		Assessments: NewAssessmentHandler(logger, assessSvc),
		Moods:       NewMoodHandler(logger, moodSvc),
		Metrics:     d.metrics,
		Limiter:     d.limiter,
	})
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func performForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"age":          {"34"},
		"experience":   {"8"},
		"work_hours":   {"52"},
		"remote_ratio": {"10"},
		"satisfaction": {"2"},
		"stress":       {"8"},
		"gender":       {"Female"},
		"job_role":     {"Engineer"},
	}
}

func validPayload() map[string]any {
	return map[string]any{
		"age":          34,
		"experience":   8,
		"work_hours":   52,
		"remote_ratio": 10,
		"satisfaction": 2,
		"stress":       8,
		"gender":       "Female",
		"job_role":     "Engineer",
	}
}

func TestIndexRendersEmptyForm(t *testing.T) {
	r := setupRouter(testDeps{})
	rec := performRequest(r, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `action="/predict"`) {
		t.Fatalf("expected form in page")
	}
	if strings.Contains(body, "factor-row") {
		t.Fatalf("expected no result sections on empty page")
	}
}

func TestPredictFormRendersResult(t *testing.T) {
	r := setupRouter(testDeps{predictor: &stubPredictor{probability: 55}})
	rec := performForm(r, "/predict", validForm())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"High Burnout Risk", "55.0%", "result-high", "factor-row", "plan-week", "Compared with other Engineers"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}
}

func TestPredictFormInvalidNumberShowsErrorPage(t *testing.T) {
	predictor := &stubPredictor{probability: 55}
	r := setupRouter(testDeps{predictor: predictor})
	form := validForm()
	form.Set("age", "abc")

	rec := performForm(r, "/predict", form)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "❌ Error") || !strings.Contains(body, "An error occurred:") {
		t.Fatalf("expected generic error page, got %s", body)
	}
	if strings.Contains(body, "factor-row") {
		t.Fatalf("expected no factors on error page")
	}
}

func TestPredictFormPredictorFailureShowsErrorPage(t *testing.T) {
	r := setupRouter(testDeps{predictor: &stubPredictor{err: errors.New("model exploded")}})
	rec := performForm(r, "/predict", validForm())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "❌ Error") {
		t.Fatalf("expected error page")
	}
}

func TestPredictJSONSuccess(t *testing.T) {
	r := setupRouter(testDeps{predictor: &stubPredictor{probability: 10}})
	rec := performRequest(r, http.MethodPost, "/api/predict", validPayload())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Assessment domain.Assessment `json:"assessment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Assessment.Tier.Class != domain.RiskClassLow {
		t.Fatalf("expected low tier, got %q", resp.Assessment.Tier.Class)
	}
	if len(resp.Assessment.Factors) != 4 || len(resp.Assessment.ActionPlan) != 4 {
		t.Fatalf("expected 4 factors and 4 plan weeks, got %d and %d", len(resp.Assessment.Factors), len(resp.Assessment.ActionPlan))
	}
}

func TestPredictJSONInvalidInput(t *testing.T) {
	r := setupRouter(testDeps{})
	payload := validPayload()
	payload["stress"] = 42
	rec := performRequest(r, http.MethodPost, "/api/predict", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestPredictJSONMalformedBody(t *testing.T) {
	r := setupRouter(testDeps{})
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestPredictJSONPredictorFailure(t *testing.T) {
	r := setupRouter(testDeps{predictor: &stubPredictor{err: errors.New("boom")}})
	rec := performRequest(r, http.MethodPost, "/api/predict", validPayload())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestPredictRateLimited(t *testing.T) {
	m := metrics.New()
	r := setupRouter(testDeps{limiter: &mockLimiter{allow: false}, metrics: m})
	rec := performRequest(r, http.MethodPost, "/api/predict", validPayload())
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/metrics", nil)
	if !strings.Contains(rec.Body.String(), "burnout_http_rate_limited_total 1") {
		t.Fatalf("expected rate limited counter to be exported")
	}
}

func TestPredictFormRateLimitedShowsErrorPage(t *testing.T) {
	m := metrics.New()
	r := setupRouter(testDeps{limiter: &mockLimiter{allow: false}, metrics: m})
	rec := performForm(r, "/predict", validForm())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "❌ Error") || !strings.Contains(body, "too many requests") {
		t.Fatalf("expected generic error page, got %s", body)
	}
	if strings.Contains(body, "factor-row") {
		t.Fatalf("expected no result sections when rate limited")
	}

	rec = performRequest(r, http.MethodGet, "/metrics", nil)
	if !strings.Contains(rec.Body.String(), "burnout_http_rate_limited_total 1") {
		t.Fatalf("expected rate limited counter to be exported")
	}
}

func TestHistoryWithoutRepositoryIsUnavailable(t *testing.T) {
	r := setupRouter(testDeps{})
	rec := performRequest(r, http.MethodGet, "/api/assessments", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

func TestHistoryInvalidLimit(t *testing.T) {
	r := setupRouter(testDeps{})
	rec := performRequest(r, http.MethodGet, "/api/assessments?limit=-3", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestMoodAppendEmptyBodyUsesDefaults(t *testing.T) {
	repo := &memoryMoodRepo{}
	r := setupRouter(testDeps{moods: repo})

	req := httptest.NewRequest(http.MethodPost, "/api/mood", nil)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("expected success body, got %s", rec.Body.String())
	}
	if len(repo.entries) != 1 || repo.entries[0].Mood != domain.DefaultMoodScore || repo.entries[0].Emoji != domain.DefaultMoodEmoji {
		t.Fatalf("expected default entry, got %+v", repo.entries)
	}
}

func TestMoodAppendAndList(t *testing.T) {
	r := setupRouter(testDeps{})
	rec := performRequest(r, http.MethodPost, "/api/mood", map[string]any{"mood": 5, "emoji": "😄", "note": "great"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/api/mood", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var entries []domain.MoodEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Mood != 5 || entries[0].Note != "great" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestMoodListEmptyIsArray(t *testing.T) {
	r := setupRouter(testDeps{})
	rec := performRequest(r, http.MethodGet, "/api/mood", nil)
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected json content type, got %q", ct)
	}
}

func TestMoodAppendRepoFailure(t *testing.T) {
	r := setupRouter(testDeps{moods: &memoryMoodRepo{err: errors.New("disk full")}})
	rec := performRequest(r, http.MethodPost, "/api/mood", map[string]any{"mood": 2})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	r := setupRouter(testDeps{})
	rec := performRequest(r, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
