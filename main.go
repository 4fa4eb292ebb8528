package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"charter-backend/config"
	"charter-backend/controllers"
	"charter-backend/routes"
	"charter-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// The chat widget degrades to a 500 with a fixed message when the
	// webhook is missing; startup keeps going.
	webhookURL := os.Getenv("CHAT_WEBHOOK_URL")
	if webhookURL == "" {
		log.Println("warning: CHAT_WEBHOOK_URL not set; chat relay will reject messages")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations applied")

	// Services
	boatService := services.NewBoatService(db)
	bookingService := services.NewBookingService(db)
	customerService := services.NewCustomerService(db)
	articleService := services.NewArticleService(db)
	catalogService := services.NewCatalogService(db)
	chatService := services.NewChatService(webhookURL)

	// Controllers
	boatController := controllers.NewBoatController(boatService)
	bookingController := controllers.NewBookingController(bookingService, customerService)
	customerController := controllers.NewCustomerController(customerService, bookingService)
	articleController := controllers.NewArticleController(articleService)
	catalogController := controllers.NewCatalogController(catalogService)
	chatController := controllers.NewChatController(chatService)

	router := routes.SetupRouter(
		boatController,
		bookingController,
		customerController,
		articleController,
		catalogController,
		chatController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
