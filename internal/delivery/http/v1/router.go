package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fenrirlabsnl/airesume/config"
	"github.com/fenrirlabsnl/airesume/internal/delivery/http/middleware"
	"github.com/fenrirlabsnl/airesume/internal/delivery/http/response"
	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/auth"
)

type RouterDeps struct {
	ProfileUC    domain.ProfileUsecase
	ExperienceUC domain.ExperienceUsecase
	SkillUC      domain.SkillUsecase
	ContentUC    domain.ContentUsecase
	ChatUC       domain.ChatUsecase
	AnalyzerUC   domain.AnalyzerUsecase
	ExportUC     domain.ExportUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public read routes
	NewPublicHandler(v1, deps.ProfileUC, deps.ExperienceUC, deps.SkillUC, deps.ContentUC)

	// AI endpoints get their own, tighter limits
	chat := v1.Group("")
	chat.Use(middleware.RateLimitMiddleware(middleware.ChatRateLimitConfig()))
	NewChatHandler(chat, deps.ChatUC)

	analyze := v1.Group("")
	analyze.Use(middleware.RateLimitMiddleware(middleware.AnalyzeRateLimitConfig()))
	NewAnalyzerHandler(analyze, deps.AnalyzerUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AdminAuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewAdminHandler(protected, deps.ProfileUC, deps.ExperienceUC, deps.SkillUC, deps.ContentUC, deps.ExportUC)
	}

	return r
}
