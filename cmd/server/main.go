// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rubingroup/rubin-backend/internal/config"
	"github.com/rubingroup/rubin-backend/internal/database"
	"github.com/rubingroup/rubin-backend/internal/handlers"
	"github.com/rubingroup/rubin-backend/internal/i18n"
	"github.com/rubingroup/rubin-backend/internal/router"
	"github.com/rubingroup/rubin-backend/internal/services"
	"github.com/rubingroup/rubin-backend/internal/store"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.LocalesPath); err != nil {
		log.Fatal("Failed to initialize i18n:", err)
	}

	// Initialize product store
	productStore, err := store.NewFirestoreProductStore(ctx, cfg.Firestore, cfg.Firebase.CredentialsJSON)
	if err != nil {
		log.Fatal("Failed to initialize product store:", err)
	}
	defer productStore.Close()

	// Initialize services
	authService, err := services.NewAuthService(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize auth service:", err)
	}

	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage service:", err)
	}

	sheetsService, err := services.NewSheetsService(ctx, cfg.Sheets)
	if err != nil {
		log.Fatal("Failed to initialize sheets service:", err)
	}

	catalogService := services.NewCatalogService(productStore)
	productService := services.NewProductService(productStore)
	locationService := services.NewLocationService(db)
	clientsService := services.NewClientsService(cfg.Clients)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(cfg, router.Dependencies{
		AuthHandler:         handlers.NewAuthHandler(authService),
		CatalogHandler:      handlers.NewCatalogHandler(catalogService, productService),
		ProductHandler:      handlers.NewProductHandler(productService, storageService),
		LocationHandler:     handlers.NewLocationHandler(locationService),
		RegistrationHandler: handlers.NewRegistrationHandler(sheetsService),
		ClientsHandler:      handlers.NewClientsHandler(clientsService),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
