package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-ai/internal/adapter"
	"quiz-ai/internal/adapter/llm"
	"quiz-ai/internal/cache"
	"quiz-ai/internal/config"
	"quiz-ai/internal/domain"
	"quiz-ai/internal/extractor"
	"quiz-ai/internal/handler"
	"quiz-ai/internal/logger"
	"quiz-ai/internal/middleware"
	"quiz-ai/internal/service"

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

		// Process request
		err := c.Next()

		// Log request details
		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
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

	// Initialize the LLM client
	generator, err := llm.NewOpenAIClient(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("server", cfg.LLM.Server),
		zap.String("model", cfg.LLM.Model),
		zap.Duration("timeout", cfg.LLM.Timeout),
	)

	// Initialize the text extraction gateway
	extractorService := extractor.NewService()

	// Initialize the optional response cache. An empty Redis address means
	// the service runs without one.
	var responseCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		responseCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Quiz set cache enabled", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Quiz set cache disabled (no redis.address configured)")
	}

	// Initialize services and handlers
	quizService := service.NewQuizService(generator, extractorService, responseCache, cfg)
	quizHandler := handler.NewQuizHandler(quizService)
	validationMw := middleware.NewValidationMiddleware(cfg.Quiz)

	// Create the Fiber app; constructed exactly once, routes registered
	// explicitly below.
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// Routes (paths are a compatibility contract with existing clients)
	app.Post("/generate_quiz", validationMw.ValidateQuizType(), quizHandler.GenerateQuiz)
	app.Post("/extract_text", quizHandler.ExtractText)
	app.Post("/ask_ai_model", validationMw.ValidateQuizCounts(), quizHandler.AskAIModel)

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
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
