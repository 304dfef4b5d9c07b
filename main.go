package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jupiarasanches/gestao-processos3/config"
	"github.com/jupiarasanches/gestao-processos3/handler"
	"github.com/jupiarasanches/gestao-processos3/middleware"
	"github.com/jupiarasanches/gestao-processos3/pkg/logger"
	"github.com/jupiarasanches/gestao-processos3/service"
)

func main() {
	// Load configuration
	configPath := os.Getenv("ECOFLOW_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
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

	// Initialize stores with the demo seed data
	processStore := service.NewProcessStore(service.SeedProcesses())
	technicianStore := service.NewTechnicianStore(service.SeedTechnicians())
	userStore := service.NewUserStore(cfg.Users,
		time.Duration(cfg.Auth.ResetTokenExpireMinutes)*time.Minute)
	analytics := service.NewAnalytics(processStore, technicianStore)

	slog.Info("registries seeded",
		"processes", processStore.Count(),
		"technicians", technicianStore.Count(),
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userStore, &cfg.Auth)
	processHandler := handler.NewProcessHandler(processStore, &cfg.Upload)
	technicianHandler := handler.NewTechnicianHandler(technicianStore)
	dashboardHandler := handler.NewDashboardHandler(analytics)
	searchHandler := handler.NewSearchHandler(processStore, technicianStore)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/reset-password", authHandler.RequestPasswordReset)
		api.POST("/auth/reset-password/confirm", authHandler.ConfirmPasswordReset)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)

		protected.GET("/processes", processHandler.List)
		protected.POST("/processes", processHandler.Create)
		protected.GET("/processes/:id", processHandler.Get)
		protected.PATCH("/processes/:id", processHandler.Update)
		protected.DELETE("/processes/:id", processHandler.Delete)
		protected.POST("/processes/:id/documents", processHandler.UploadDocument)

		protected.GET("/technicians", technicianHandler.List)
		protected.POST("/technicians", technicianHandler.Create)
		protected.GET("/technicians/stats", technicianHandler.Stats)
		protected.GET("/technicians/:id", technicianHandler.Get)
		protected.PATCH("/technicians/:id", technicianHandler.Update)
		protected.DELETE("/technicians/:id", technicianHandler.Delete)

		protected.GET("/dashboard/stats", dashboardHandler.Stats)
		protected.GET("/reports/analytics", dashboardHandler.Report)
		protected.GET("/reports/export", dashboardHandler.ExportReport)

		protected.GET("/search", searchHandler.Search)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers for the dashboard frontend
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
