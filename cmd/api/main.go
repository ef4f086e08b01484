package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"burnout-check/internal/config"
	"burnout-check/internal/db"
	apihttp "burnout-check/internal/http"
	"burnout-check/internal/metrics"
	"burnout-check/internal/model"
	"burnout-check/internal/repository"
	"burnout-check/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pipeline, err := model.Load(cfg.ModelBackend, cfg.ModelPath, cfg.ScalerPath, cfg.ONNXLibPath)
	if err != nil {
		logger.Fatal("load model", zap.Error(err), zap.String("backend", cfg.ModelBackend))
	}
	defer pipeline.Close()

	var (
		pool    *pgxpool.Pool
		history repository.AssessmentRepository
	)
	if cfg.DatabaseURL != "" {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		history = repository.NewPgAssessmentRepository(pool)
	}

	moodRepo, closeMoods, err := repository.OpenMoodStore(ctx, cfg, pool)
	if err != nil {
		logger.Fatal("open mood store", zap.Error(err), zap.String("store", cfg.MoodStore))
	}
	defer closeMoods()

	var m *metrics.Metrics
	var (
		assessObserver service.AssessmentObserver
		moodObserver   service.MoodObserver
	)
	if cfg.MetricsOn {
		m = metrics.New()
		assessObserver = m
		moodObserver = m
	}

	limiter := service.NewMemoryRateLimiter(cfg.PredictRate)
	if cfg.RedisAddr != "" && cfg.PredictRate > 0 {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.PredictRate)
		}
		cancel()
	}

	assessSvc := service.NewAssessmentService(pipeline, history, assessObserver, logger)
	moodSvc := service.NewMoodService(moodRepo, moodObserver, logger)

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Logger:      logger,
		Assessments: apihttp.NewAssessmentHandler(logger, assessSvc),
		Moods:       apihttp.NewMoodHandler(logger, moodSvc),
		Metrics:     m,
		Limiter:     limiter,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("model_backend", cfg.ModelBackend),
		zap.String("mood_store", cfg.MoodStore),
		zap.Bool("history", history != nil),
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
