package routes

import (
	"vetkom-cpd-admin/internal/adapters/http/handlers"
	"vetkom-cpd-admin/internal/adapters/http/middleware"
	"vetkom-cpd-admin/internal/adapters/persistence/repositories"
	"vetkom-cpd-admin/internal/config"
	"vetkom-cpd-admin/internal/core/services"
	"vetkom-cpd-admin/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	settingsRepo := repositories.NewSettingsRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)
	attachmentRepo := repositories.NewAttachmentRepository(db)

	// File storage under the CUD base path
	store := storage.NewLocalStorage(cfg.Storage.CudBasePath)

	// Initialize services
	settingsService := services.NewSettingsService(settingsRepo)
	templateService := services.NewTemplateService(templateRepo, store)
	attachmentService := services.NewAttachmentService(attachmentRepo, store)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group: every admin route requires a known role
	apiV1 := app.Group("/api/v1")
	apiV1.Use(middleware.RequireKnownRole())

	settingsRoutes := apiV1.Group("/settings")
	setupSettingsRoutes(settingsRoutes, settingsHandler)

	templateRoutes := apiV1.Group("/templates")
	setupTemplateRoutes(templateRoutes, templateHandler)

	fileRoutes := apiV1.Group("/files")
	fileRoutes.Use(middleware.RequireFileAccess())
	setupFileRoutes(fileRoutes, attachmentHandler)
}

// setupSettingsRoutes configures system settings routes
func setupSettingsRoutes(router fiber.Router, handler *handlers.SettingsHandler) {
	router.Get("/", handler.Get)
	router.Put("/", handler.Update)
	router.Post("/validate", handler.Validate)
	router.Post("/reset", handler.Reset)
}

// setupTemplateRoutes configures template routes
func setupTemplateRoutes(router fiber.Router, handler *handlers.TemplateHandler) {
	router.Get("/", handler.List)
	router.Get("/search", handler.Search)
	router.Get("/:id", handler.GetByID)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)

	// Exports
	router.Get("/:id/export/docx", handler.ExportDocx)
	router.Get("/:id/export/pdf", handler.ExportPdf)
	router.Post("/:id/save-docx", handler.SaveDocx)
}

// setupFileRoutes configures file attachment routes
func setupFileRoutes(router fiber.Router, handler *handlers.AttachmentHandler) {
	router.Get("/", handler.List)
	router.Get("/search", handler.Search)
	router.Get("/by-type", handler.ListByType)
	router.Get("/summary", handler.Summary)
	router.Post("/upload", handler.Upload)
	router.Get("/:id", handler.GetByID)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
	router.Get("/:id/download", handler.Download)
	router.Get("/:id/info", handler.GetInfo)
}
