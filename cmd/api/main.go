package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"wikiquiz/internal/adapter"
	"wikiquiz/internal/adapter/quizgen"
	"wikiquiz/internal/adapter/scraper"
	"wikiquiz/internal/cache"
	"wikiquiz/internal/config"
	"wikiquiz/internal/database"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/handler"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/middleware"
	"wikiquiz/internal/repository"
	"wikiquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		requestID, _ := c.Locals("request_id").(string)
		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("request_id", requestID),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database and make sure the schema exists
	db, err := database.NewSQLXSQLiteDB(cfg.DB.Path)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db.DB, "database/migrations"); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	quizRepository := repository.NewQuizDatabaseAdapter(db)

	// Initialize Gemini generator
	ctx := context.Background()
	generator, err := quizgen.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini generator", zap.Error(err))
	}

	// Initialize scraper
	scraperHTTPClient := &http.Client{Timeout: cfg.Scraper.Timeout}
	pageScraper := scraper.NewScraper(scraperHTTPClient, cfg.Scraper.UserAgent)

	// Initialize Redis-backed artifact cache. The cache is optional: with no
	// redis address configured, reads go straight to the database.
	var artifactCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")
		artifactCache = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		appLogger.Warn("Redis address not configured, artifact caching disabled")
	}

	// Initialize services
	quizService := service.NewQuizService(pageScraper, generator, quizRepository, artifactCache, cfg.Cache.ArtifactTTL)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Post("/quizzes", quizHandler.GenerateQuiz)
	apiGroup.Get("/quizzes", quizHandler.GetHistory)
	apiGroup.Get("/quizzes/:id", quizHandler.GetQuiz)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		appLogger.Error("Failed to close database", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
