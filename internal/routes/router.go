package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"austay/internal/config"
	"austay/internal/delivery/http/handler"
	"austay/internal/infrastructure/database/postgres"
	"austay/internal/logger"
	"austay/internal/mailer"
	"austay/internal/middleware"
	"austay/internal/usecase/dashboard"
	"austay/internal/usecase/estadia"
	"austay/internal/usecase/pagamento"
	"austay/internal/usecase/pet"
	"austay/internal/usecase/tutor"
	"austay/internal/usecase/user"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Add middleware in order: request ID, logging, security headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	tutorRepository := postgres.NewTutorRepository(db)
	petRepository := postgres.NewPetRepository(db)
	estadiaRepository := postgres.NewEstadiaRepository(db)

	mailSender := mailer.NewSMTPSender(cfg.SMTP)

	userService := user.NewService(userRepository, mailSender, cfg)
	tutorService := tutor.NewService(tutorRepository)
	petService := pet.NewService(petRepository, tutorRepository, estadiaRepository)
	estadiaService := estadia.NewService(estadiaRepository, petRepository, tutorRepository)
	pagamentoService := pagamento.NewService(estadiaRepository)
	dashboardService := dashboard.NewService(estadiaRepository, cfg.Boarding.Capacity)

	userHandler := handler.NewUserHandler(userService)
	tutorHandler := handler.NewTutorHandler(tutorService, petService)
	petHandler := handler.NewPetHandler(petService)
	estadiaHandler := handler.NewEstadiaHandler(estadiaService)
	pagamentoHandler := handler.NewPagamentoHandler(pagamentoService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterPublicRoutes(v1)
		tutorHandler.RegisterPublicRoutes(v1)
		petHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg, userRepository))
		{
			userHandler.RegisterProtectedRoutes(protected)
			tutorHandler.RegisterProtectedRoutes(protected)
			petHandler.RegisterProtectedRoutes(protected)
			estadiaHandler.RegisterProtectedRoutes(protected)
			pagamentoHandler.RegisterProtectedRoutes(protected)
			dashboardHandler.RegisterProtectedRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
