package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"cvmatch/internal/config"
	"cvmatch/internal/handlers"
	"cvmatch/internal/logger"
	"cvmatch/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env == "production", cfg.Server.Env == "development")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("config loaded", zap.String("env", cfg.Server.Env))

	// Session state lives in memory only; nothing is persisted between runs.
	sessions := services.NewSessionStore()
	extractor := services.NewExtractor()
	scraper := services.NewScraper(cfg.Scraper.Timeout)

	inference, err := services.NewInferenceClient(context.Background(), cfg.Inference, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize inference client", zap.Error(err))
	}
	zlog.Info("inference client initialized", zap.String("deployment", cfg.Inference.Deployment))

	matcher := services.NewMatcher(sessions, extractor, scraper, inference, zlog)

	cvHandler := handlers.NewCVHandler(sessions, matcher, cfg.Upload.MaxFileSize)
	jobHandler := handlers.NewJobHandler(sessions, matcher)
	evaluateHandler := handlers.NewEvaluateHandler(sessions, matcher)
	sessionHandler := handlers.NewSessionHandler(sessions)

	app := fiber.New(fiber.Config{
		AppName:      "CV Match API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/cv", cvHandler.HandleUploadCV)
	api.Post("/job", jobHandler.HandleSubmitJob)
	api.Post("/evaluate", evaluateHandler.HandleEvaluate)
	api.Get("/session/:id", sessionHandler.HandleGetSession)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Match API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/cv",
				"POST /api/v1/job",
				"POST /api/v1/evaluate",
				"GET /api/v1/session/:id",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
