package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"vetkom-cpd-admin/internal/adapters/http/middleware"
	"vetkom-cpd-admin/internal/adapters/http/routes"
	"vetkom-cpd-admin/internal/adapters/persistence/models"
	"vetkom-cpd-admin/internal/adapters/persistence/repositories"
	"vetkom-cpd-admin/internal/config"
	"vetkom-cpd-admin/internal/core/services"
	"vetkom-cpd-admin/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"

	_ "vetkom-cpd-admin/docs" // Swagger docs
)

// @title VETKOM CPD Admin API
// @version 1.0
// @description Nastavení systému CPD vzdělávání VETKOM - settings, templates, file attachments

// @contact.name API Support
// @contact.email podpora@vetkom.cz

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed settings singleton and default templates
	if err := config.SeedData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Make sure the CUD storage directory exists
	store := storage.NewLocalStorage(cfg.Storage.CudBasePath)
	if err := store.EnsureDir(); err != nil {
		log.Fatalf("❌ Failed to create storage directory: %v", err)
	}

	// Daily storage consistency sweep
	consistencyService := services.NewConsistencyService(repositories.NewAttachmentRepository(db), store)
	consistencyService.Start()
	defer consistencyService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "VETKOM CPD Admin API v1.0",
		BodyLimit:    12 * 1024 * 1024,
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
