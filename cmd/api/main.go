package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"go-jobpilot-backend/config"
	_ "go-jobpilot-backend/docs" // Important for Swagger
	v1 "go-jobpilot-backend/internal/delivery/http/v1"
	"go-jobpilot-backend/internal/repository/postgres"
	"go-jobpilot-backend/internal/usecase"
	"go-jobpilot-backend/pkg/auth"
	"go-jobpilot-backend/pkg/database"
	"go-jobpilot-backend/pkg/logger"
	"go-jobpilot-backend/pkg/redis"
	"go-jobpilot-backend/pkg/validation"
)

// @title           JobPilot Backend API
// @version         1.0
// @description     Career assistant backend using Clean Architecture.
// @host            localhost:8000
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting jobpilot backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
	}

	// 5. Register custom binding validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	interactionRepo := postgres.NewInteractionRepository(dbPool)
	timelineRepo := postgres.NewTimelineRepository(dbPool)
	sourceRepo := postgres.NewJobSourceRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	bankRepo := postgres.NewSkillBankRepository(dbPool)

	// 7. Setup Auth primitives
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.SecretKey, cfg.TokenExpiry)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, hasher, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	applicationUC := usecase.NewApplicationUsecase(interactionRepo)
	timelineUC := usecase.NewTimelineUsecase(timelineRepo)
	sourceUC := usecase.NewJobSourceUsecase(sourceRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	bankUC := usecase.NewSkillBankUsecase(bankRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		CompanyUC:     companyUC,
		ApplicationUC: applicationUC,
		TimelineUC:    timelineUC,
		JobSourceUC:   sourceUC,
		ResumeUC:      resumeUC,
		SkillBankUC:   bankUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
