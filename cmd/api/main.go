package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fenrirlabsnl/airesume/config"
	_ "github.com/fenrirlabsnl/airesume/docs" // Important for Swagger
	v1 "github.com/fenrirlabsnl/airesume/internal/delivery/http/v1"
	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/internal/llm"
	"github.com/fenrirlabsnl/airesume/internal/repository/postgres"
	"github.com/fenrirlabsnl/airesume/internal/responder"
	"github.com/fenrirlabsnl/airesume/internal/scoring"
	"github.com/fenrirlabsnl/airesume/internal/usecase"
	"github.com/fenrirlabsnl/airesume/pkg/audit"
	"github.com/fenrirlabsnl/airesume/pkg/auth"
	"github.com/fenrirlabsnl/airesume/pkg/database"
	"github.com/fenrirlabsnl/airesume/pkg/logger"
	"github.com/fenrirlabsnl/airesume/pkg/redis"
	"github.com/fenrirlabsnl/airesume/pkg/validation"
)

// @title           Candidate Portfolio API
// @version         1.0
// @description     Backend for the AI-assisted candidate portfolio site using Clean Architecture.
// @host            localhost:8080
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

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)
	auditLogger := audit.Init("airesume-backend", os.Getenv("ENVIRONMENT"))
	defer auditLogger.Sync()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	gapRepo := postgres.NewGapRepository(dbPool)
	faqRepo := postgres.NewFaqRepository(dbPool)
	instructionRepo := postgres.NewInstructionRepository(dbPool)
	chatRepo := postgres.NewChatRepository(dbPool)

	// 6. Select AI strategies. The decision is made once at startup:
	// with an API key both chat and analysis go remote, without one
	// they run on the deterministic local implementations.
	var chatResponder domain.Responder
	var primaryScorer, fallbackScorer domain.FitScorer
	localScorer := scoring.NewLocalScorer()
	if cfg.AnthropicAPIKey != "" {
		client := llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
		chatResponder = responder.NewRemoteResponder(client)
		primaryScorer = scoring.NewRemoteScorer(client)
		fallbackScorer = localScorer
		logger.Log.Info("Using remote AI strategies")
	} else {
		chatResponder = responder.NewLocalResponder()
		primaryScorer = localScorer
		logger.Log.Info("Using local AI strategies")
	}

	// 7. Setup UseCases
	validate := validation.New()
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, validate)
	contentUC := usecase.NewContentUsecase(gapRepo, faqRepo, instructionRepo, validate)
	chatUC := usecase.NewChatUsecase(chatRepo, profileRepo, experienceRepo, skillRepo,
		gapRepo, faqRepo, instructionRepo, chatResponder, cfg.ChatHistoryWindow)
	analyzerUC := usecase.NewAnalyzerUsecase(profileRepo, experienceRepo, skillRepo, gapRepo,
		primaryScorer, fallbackScorer)
	exportUC := usecase.NewExportUsecase(chatRepo)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:    profileUC,
		ExperienceUC: experienceUC,
		SkillUC:      skillUC,
		ContentUC:    contentUC,
		ChatUC:       chatUC,
		AnalyzerUC:   analyzerUC,
		ExportUC:     exportUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
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
