package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-jobpilot-backend/config"
	"go-jobpilot-backend/internal/delivery/http/middleware"
	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/auth"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	CompanyUC     domain.CompanyUsecase
	ApplicationUC domain.ApplicationUsecase
	TimelineUC    domain.TimelineUsecase
	JobSourceUC   domain.JobSourceUsecase
	ResumeUC      domain.ResumeUsecase
	SkillBankUC   domain.SkillBankUsecase
	Tokens        *auth.TokenService
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)
		NewJobHandler(protected, deps.JobUC)
		NewCompanyHandler(protected, deps.CompanyUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewTimelineHandler(protected, deps.TimelineUC)
		NewJobSourceHandler(protected, deps.JobSourceUC)
		NewResumeHandler(protected, deps.ResumeUC)
		NewSkillBankHandler(protected, deps.SkillBankUC)
	}

	return r
}
