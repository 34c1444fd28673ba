// Sleep Coach API
//
// REST API recommending when to sleep around daily commitments and fatigue.
//
//	@title			Sleep Coach API
//	@version		1.0
//	@description	Computes sleep-window recommendations from calendar commitments, fatigue history, and a wake or bedtime anchor.
//
//	@BasePath	/v1
//
//	@tag.name			auth
//	@tag.description	Account and session endpoints
//
//	@tag.name			schedule
//	@tag.description	Calendar commitment endpoints
//
//	@tag.name			fatigue
//	@tag.description	Daily fatigue rating endpoints
//
//	@tag.name			sleep
//	@tag.description	Sleep record endpoints
//
//	@tag.name			recommendations
//	@tag.description	Sleep-window recommendation endpoints
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/dkwak/sleepcoach/internal/api"
	"github.com/dkwak/sleepcoach/internal/api/handler"
	"github.com/dkwak/sleepcoach/internal/config"
	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/llm"
	"github.com/dkwak/sleepcoach/internal/repository"
	"github.com/dkwak/sleepcoach/internal/seed"
	"github.com/dkwak/sleepcoach/internal/service"
	"github.com/dkwak/sleepcoach/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("Invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	// Tracing is a no-op unless an OTLP endpoint is configured
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracer(context.Background())

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.ScheduleEvent{},
		&domain.FatigueLog{},
		&domain.SleepLog{},
	); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Database migration completed")

	if cfg.Seed {
		logger.Info("Seeding database with sample data (SEED=true)")
		if err := seed.Run(db, loc); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	fatigueRepo := repository.NewFatigueRepository(db)
	sleepLogRepo := repository.NewSleepLogRepository(db)

	// Initialize text polisher (may be nil if not configured)
	polisher := llm.NewOpenAIPolisher(cfg.OpenAIAPIKey, cfg.OpenAIPolishModel)
	if polisher == nil {
		logger.Warn("OpenAI API key not configured, recommendations will use deterministic text only")
	}

	// Initialize services
	userService := service.NewUserService(userRepo, sessionRepo, cfg.Timezone)
	scheduleService := service.NewScheduleService(scheduleRepo, loc)
	fatigueService := service.NewFatigueService(fatigueRepo, loc)
	sleepLogService := service.NewSleepLogService(sleepLogRepo)
	recommendationService := service.NewRecommendationService(scheduleRepo, fatigueRepo, userRepo, polisher, loc, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	fatigueHandler := handler.NewFatigueHandler(fatigueService)
	sleepLogHandler := handler.NewSleepLogHandler(sleepLogService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)

	// Setup router
	router := api.NewRouter(authHandler, scheduleHandler, fatigueHandler, sleepLogHandler, recommendationHandler, sessionRepo, logger)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	logger.Info("Starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
