package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"pokedex-api/internal/cache"
	"pokedex-api/internal/config"
	"pokedex-api/internal/controllers"
	"pokedex-api/internal/database"
	"pokedex-api/internal/jwt"
	"pokedex-api/internal/middleware"
	"pokedex-api/internal/repository"
	"pokedex-api/internal/seed"
	"pokedex-api/internal/service"
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
	pokemonRepo := repository.NewPokemonRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLHours)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	pokemonService := service.NewPokemonService(pokemonRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	pokemonController := controllers.NewPokemonController(pokemonService)

	// Seed demo data when enabled; failure is logged, not fatal
	if cfg.SeedDemoData {
		if err := seed.NewSeeder(userRepo, pokemonRepo).Run(); err != nil {
			log.Printf("Warning: database seeding failed: %v", err)
		}
	}

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(generalRateLimiter.LimitMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes with stricter rate limiting
	users := router.Group("/users")
	users.Use(authRateLimiter.LimitMiddleware())
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
	}

	// Catalog routes - require a valid bearer token
	pokemon := router.Group("/pokemon")
	pokemon.Use(middleware.AuthMiddleware(jwtService))
	{
		pokemon.GET("/getall", pokemonController.GetAll)
		pokemon.GET("/search", pokemonController.Search)
		pokemon.POST("/create", pokemonController.Create)
		pokemon.PUT("/:id", pokemonController.Update)
		pokemon.DELETE("/:id", pokemonController.Delete)
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
