package server

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"autokeep/api/internal/config"
	"autokeep/api/internal/handler"
	"autokeep/api/internal/middleware"
	"autokeep/api/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router    *gin.Engine
	config    *config.Config
	db        *gorm.DB
	redis     *redis.Client
	nats      *nats.Conn
	wsHub     *handler.WSHub
	wsHandler *handler.WSHandler
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, natsConn *nats.Conn) *Server {
	return &Server{
		config: cfg,
		db:     db,
		redis:  redisClient,
		nats:   natsConn,
	}
}

// Setup initializes routes and handlers
func (s *Server) Setup() {
	// Initialize WebSocket hub first so services can publish to it via NATS
	s.wsHub = handler.NewWSHub(s.nats)
	s.wsHandler = handler.NewWSHandler(s.wsHub)

	// Initialize services
	authService := service.NewAuthService(s.db)
	vehicleService := service.NewVehicleService(s.db, s.nats)
	maintenanceService := service.NewMaintenanceService(s.db, s.nats)
	promptService := service.NewPromptService(s.redis, vehicleService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, s.db, s.config)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, maintenanceService)
	maintenanceHandler := handler.NewMaintenanceHandler(vehicleService, maintenanceService)
	promptHandler := handler.NewPromptHandler(promptService)
	referenceHandler := handler.NewReferenceHandler()
	auditHandler := handler.NewAuditHandler(s.db)

	// Start WebSocket hub in background
	go s.wsHub.Run()
	log.Println("[Server] WebSocket hub started")

	// Setup Gin router
	s.router = gin.Default()

	// CORS middleware
	s.router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Rate limiting (fails open when Redis is unavailable)
	var rateLimitGroup *middleware.RateLimitGroup
	if s.config.RateLimit.Enabled && s.redis != nil {
		limiter := middleware.NewRedisRateLimiter(s.redis)
		rateLimitGroup = middleware.NewRateLimitGroup(limiter, s.config.RateLimit.DefaultRule.ToMiddlewareConfig())
		for i := range s.config.RateLimit.SpecificRules {
			rule := &s.config.RateLimit.SpecificRules[i]
			rateLimitGroup.AddSpecificConfig(rule.Path, rule.ToMiddlewareConfig())
		}
		log.Println("[Server] Rate limiting enabled")
	}

	// Swagger UI
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := s.router.Group("/api/v1/auth")
	if rateLimitGroup != nil {
		auth.Use(rateLimitGroup.Middleware())
	}
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)

	// WebSocket routes - public but can add auth middleware if needed
	s.router.GET("/ws/sync", s.wsHandler.HandleSync)
	s.router.GET("/ws/stats", s.wsHandler.GetStats)

	// Protected routes
	api := s.router.Group("/api/v1")
	api.Use(authHandler.AuthMiddleware())
	if rateLimitGroup != nil {
		api.Use(rateLimitGroup.Middleware())
	}
	{
		// Auth
		api.GET("/auth/me", authHandler.GetMe)

		// Vehicles
		vehicleHandler.RegisterRoutes(api)

		// Maintenance items, logs, status, presets
		maintenanceHandler.RegisterRoutes(api)

		// Daily mileage prompt
		promptHandler.RegisterRoutes(api)

		// Reference data
		referenceHandler.RegisterRoutes(api)

		// Login audit logs
		auditHandler.RegisterRoutes(api)
	}
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	log.Printf("[Server] HTTP server listening on %s", addr)
	return s.router.Run(addr)
}

// GetWSHub returns the WebSocket hub for external use
func (s *Server) GetWSHub() *handler.WSHub {
	return s.wsHub
}

// GetRouter returns the gin router for testing
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() {
	if s.wsHub != nil {
		s.wsHub.Stop()
		log.Println("[Server] WebSocket hub stopped")
	}
}
