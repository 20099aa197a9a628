// Package server assembles the HTTP router: middleware, handlers and routes.
package server

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"orbit/internal/config"
	"orbit/internal/handlers"
	"orbit/internal/middleware"
	"orbit/internal/services"

	_ "orbit/internal/docs" // swagger docs
)

// Server holds the router and the resources it owns.
type Server struct {
	Router       *gin.Engine
	loginLimiter *middleware.RateLimiter
}

// New wires services, handlers and middleware over db.
func New(cfg *config.Config, db *gorm.DB) *Server {
	// Services
	userService := services.NewUserService(db, cfg.BcryptCost)
	moodService := services.NewMoodService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	tokens := middleware.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpirationDur)
	userHandler := handlers.NewUserHandler(userService, auditService, tokens)
	moodHandler := handlers.NewMoodHandler(moodService, auditService)

	loginLimiter := middleware.NewRateLimiter(rate.Limit(cfg.LoginRateLimit), cfg.LoginRateBurst)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := router.Group("/users")
	users.POST("", userHandler.Create)
	users.POST("/login", loginLimiter.LimitMiddleware(), userHandler.Login)
	users.GET("/me", middleware.AuthMiddleware(tokens), userHandler.Me)
	users.GET("/:id", userHandler.GetProfile)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	moods := router.Group("/mood")
	moods.POST("", moodHandler.Create)
	moods.GET("/user/:id", moodHandler.ListByUser)
	moods.GET("/user/:id/stats", moodHandler.StatsByUser)
	moods.GET("/:id", moodHandler.Get)
	moods.PUT("/:id", moodHandler.Update)
	moods.DELETE("/:id", moodHandler.Delete)

	return &Server{Router: router, loginLimiter: loginLimiter}
}

// Close stops background work started by New.
func (s *Server) Close() {
	s.loginLimiter.Stop()
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
