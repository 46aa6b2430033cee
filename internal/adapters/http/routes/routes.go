package routes

import (
	"arunoday-portal/internal/adapters/http/handlers"
	"arunoday-portal/internal/adapters/http/middleware"
	"arunoday-portal/internal/adapters/persistence/repositories"
	"arunoday-portal/internal/config"
	"arunoday-portal/internal/core/services"
	"arunoday-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *repositories.Store, cfg *config.Config, tokens *jwt.Manager) {
	// Initialize services
	resolver := services.NewIdentityResolver(store.Admins, store.Students)
	authService := services.NewAuthService(resolver, tokens)
	studentService := services.NewStudentService(store.Admins, store.Students, resolver)
	paymentService := services.NewPaymentService(store.Students, store.Payments, resolver)
	contactService := services.NewContactService(store.Contacts)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(studentService, paymentService)
	studentHandler := handlers.NewStudentHandler(studentService, paymentService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")
	setupAPIRoutes(api, authHandler, adminHandler, studentHandler, contactHandler, cfg, tokens)
}

// setupAPIRoutes configures the API routes
func setupAPIRoutes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	studentHandler *handlers.StudentHandler,
	contactHandler *handlers.ContactHandler,
	cfg *config.Config,
	tokens *jwt.Manager,
) {
	// Auth routes (public)
	router.Post("/auth/login", middleware.AuthRateLimiter(cfg.LoginRateLimit), authHandler.Login)

	// Contact route (public)
	router.Post("/contact", contactHandler.Submit)

	// Admin routes (Admin only)
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(tokens))
	adminRoutes.Use(middleware.AdminOnly())
	adminRoutes.Use(middleware.NoCacheHeaders())
	setupAdminRoutes(adminRoutes, adminHandler)

	// Student routes (Student only)
	studentRoutes := router.Group("/student")
	studentRoutes.Use(middleware.AuthMiddleware(tokens))
	studentRoutes.Use(middleware.StudentOnly())
	studentRoutes.Use(middleware.NoCacheHeaders())
	setupStudentRoutes(studentRoutes, studentHandler)
}

// setupAdminRoutes configures student management routes
func setupAdminRoutes(router fiber.Router, handler *handlers.AdminHandler) {
	router.Get("/students", handler.ListStudents)
	router.Post("/students", handler.CreateStudent)
	router.Put("/students/:id", handler.UpdateStudent)
	router.Delete("/students/:id", handler.DeleteStudent)
	router.Post("/students/:id/reset-password", handler.ResetPassword)
	router.Get("/payments", handler.ListPayments)
}

// setupStudentRoutes configures student self-service routes
func setupStudentRoutes(router fiber.Router, handler *handlers.StudentHandler) {
	router.Get("/profile", handler.GetProfile)
	router.Post("/change-password", handler.ChangePassword)
	router.Post("/pay-fee", handler.PayFee)
	router.Get("/payments", handler.ListPayments)
}
