package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arunoday-portal/internal/adapters/http/middleware"
	"arunoday-portal/internal/adapters/http/routes"
	"arunoday-portal/internal/config"
	"arunoday-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"

	_ "arunoday-portal/docs" // Swagger docs
)

// @title Arunoday Vidyalay Portal API
// @version 1.0
// @description School portal API: student records, fee payments and contact submissions.

// @contact.name API Support
// @contact.email admin@arunodayvidyalay.com

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	store, err := config.ConnectStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer closeStore(store.Close)

	// Seed default admin
	if err := config.NewSeeder(store.Admins, cfg.Admin).Run(context.Background()); err != nil {
		log.Fatalf("❌ Failed to seed database: %v", err)
	}

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.TokenExpiry())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Arunoday Vidyalay Portal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, store, cfg, tokens)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}

// closeStore releases the database connection
func closeStore(closeFn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := closeFn(ctx); err != nil {
		log.Printf("❌ Error closing database: %v", err)
		return
	}
	log.Println("✅ Database connection closed")
}
