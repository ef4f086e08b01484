package http

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"burnout-check/internal/domain"
	"burnout-check/internal/metrics"
	"burnout-check/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// RouterDeps agrupa lo que necesita NewRouter. Metrics y Limiter son opcionales.
type RouterDeps struct {
	Logger      *zap.Logger
	Assessments *AssessmentHandler
	Moods       *MoodHandler
	Metrics     *metrics.Metrics
	Limiter     service.RateLimiter
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.Use(zapLoggerMiddleware(deps.Logger), gin.Recovery())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/", deps.Assessments.Index)
	r.POST("/predict", rateLimitMiddleware(deps.Limiter, deps.Metrics, rejectFormRateLimited), deps.Assessments.PredictForm)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", jsonContentTypeMiddleware())
	api.POST("/predict", rateLimitMiddleware(deps.Limiter, deps.Metrics, rejectJSONRateLimited), deps.Assessments.PredictJSON)
	api.GET("/assessments", deps.Assessments.History)
	api.GET("/mood", deps.Moods.List)
	api.POST("/mood", deps.Moods.Append)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

var errRateLimited = errors.New("too many requests")

// rateLimitMiddleware corta la cadena con reject cuando el cliente supera su cuota.
func rateLimitMiddleware(limiter service.RateLimiter, m *metrics.Metrics, reject gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		if m != nil {
			m.ObserveRateLimited()
		}
		reject(c)
		c.Abort()
	}
}

func rejectJSONRateLimited(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": errRateLimited.Error()})
}

// rejectFormRateLimited muestra la misma página de error que cualquier otro fallo del formulario.
func rejectFormRateLimited(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, errorPage(domain.AssessmentInput{}, errRateLimited))
}
