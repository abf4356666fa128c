package api

import (
	"github.com/gin-gonic/gin"

	"github.com/payrollhq/bureau-api/internal/middleware"
	"github.com/payrollhq/bureau-api/internal/service"
)

type Server struct {
	auth       *AuthHandler
	dashboard  *DashboardHandler
	onboarding *OnboardingHandler
	clients    *ClientHandler
	authMW     *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	provisioningService *service.ProvisioningService,
	authService *service.AuthService,
	dashboardService *service.DashboardService,
	onboardingService *service.OnboardingService,
	clientService *service.ClientService,
	authMW *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
) *Server {
	return &Server{
		auth:       NewAuthHandler(provisioningService, authService),
		dashboard:  NewDashboardHandler(dashboardService),
		onboarding: NewOnboardingHandler(onboardingService),
		clients:    NewClientHandler(clientService),
		authMW:     authMW,
		rateLimit:  rateLimit,
		validation: validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.auth.Register)
			auth.POST("/login", s.auth.Login)
		}

		// The dashboard tolerates principals without a tenant claim: it
		// provisions a tenant lazily on first access, so only the global
		// limiter applies here.
		dashboard := api.Group("/dashboard", s.authMW.JWTAuth())
		{
			dashboard.GET("/stats", s.dashboard.GetStats)
		}

		onboarding := api.Group("/onboarding", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			onboarding.GET("/clients", s.onboarding.ListClients)
			onboarding.POST("/tasks", s.onboarding.UpdateTask)
		}

		clients := api.Group("/clients", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			clients.GET("", s.clients.ListClients)
			clients.POST("", s.authMW.RequireRole("admin"), s.clients.CreateClient)
		}
	}
}
