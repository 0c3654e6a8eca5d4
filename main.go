package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/sgc-amambai/contracts/config"
	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/handler"
	"github.com/sgc-amambai/contracts/middleware"
	"github.com/sgc-amambai/contracts/pkg/logger"
	"github.com/sgc-amambai/contracts/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	if cfg.Session.Secret == "" {
		cfg.Session.Secret = uuid.New().String()
		slog.Warn("session.secret not set, tokens will not survive a restart")
	}

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("invalid dashboard timezone", "error", err)
		os.Exit(1)
	}
	// The reference date is read from the clock here and nowhere else
	today := func() date.Date { return date.TodayIn(loc) }

	sessions := service.NewSessionStore(&cfg.Store)

	// Expiry digest
	scheduler := service.NewScheduler(cron.WithLocation(loc))
	if cfg.Digest.Enabled {
		if err := scheduler.AddJob(cfg.Digest.Schedule, service.NewExpiryDigest(sessions, today)); err != nil {
			slog.Error("failed to schedule expiry digest", "error", err)
			os.Exit(1)
		}
	}
	scheduler.Start()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessions, &cfg.Session)
	contractHandler := handler.NewContractHandler(cfg.Dashboard.Currency, today)
	dashboardHandler := handler.NewDashboardHandler(cfg.Dashboard.Currency, today)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(corsMiddleware())
	router.Use(cacheMiddleware())
	router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateWindow()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"sessions":  sessions.Count(),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/sessions", sessionHandler.Create)
		api.GET("/classify", dashboardHandler.Classify)
	}

	// Session-scoped routes
	scoped := api.Group("/")
	scoped.Use(middleware.Session(&cfg.Session, sessions))
	{
		scoped.POST("/contracts", contractHandler.Register)
		scoped.GET("/contracts", contractHandler.List)
		scoped.GET("/contracts/:id", contractHandler.Get)
		scoped.PUT("/contracts/:id", contractHandler.Update)
		scoped.GET("/dashboard", dashboardHandler.Summary)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers for the dashboard front end
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// cacheMiddleware keeps clients from caching statuses, which change with the date
func cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
		}
		c.Next()
	}
}
