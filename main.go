package main

import (
	"log"
	"time"

	"snipr-be/internal/cache"
	"snipr-be/internal/config"
	"snipr-be/internal/controllers"
	"snipr-be/internal/database"
	"snipr-be/internal/hash"
	"snipr-be/internal/jwt"
	"snipr-be/internal/middleware"
	"snipr-be/internal/repository"
	"snipr-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	// Initialize JWT service and password hasher
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)
	hasher := hash.NewBcryptHasher()

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	urlService := service.NewURLService(linkRepo, cacheClient, cfg.BaseURL)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	shortenerController := controllers.NewShortenerController(urlService)
	qrcodeController := controllers.NewQRCodeController(cfg.BaseURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	redirectRateLimiter := middleware.NewRateLimiter(rate.Limit(30.0), 60) // More lenient for redirects

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes with stricter rate limiting
	router.POST("/signup", authRateLimiter.LimitMiddleware(), authController.Signup)
	router.POST("/login", authRateLimiter.LimitMiddleware(), authController.Login)

	// Redirect endpoint with lenient rate limiting
	router.GET("/:counter", redirectRateLimiter.LimitMiddleware(), shortenerController.Redirect)

	// QR Code generation
	router.GET("/qrcode/:counter", generalRateLimiter.LimitMiddleware(), qrcodeController.GenerateQRCode)

	// Protected routes - require a valid bearer token
	protected := router.Group("")
	protected.Use(generalRateLimiter.LimitMiddleware(), middleware.AuthMiddleware(authService))
	{
		protected.GET("/me", authController.Me)
		protected.POST("/encode", shortenerController.Encode)
		protected.POST("/decode", shortenerController.Decode)
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
