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

	"dropu-backend/config"
	"dropu-backend/controllers"
	"dropu-backend/routes"
	"dropu-backend/services"
	"dropu-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	mailer := utils.NewSMTPMailer()
	authService := services.NewAuthService(db)
	tokenService := services.NewTokenService(db, mailer)
	adminService := services.NewAdminService(db, authService, tokenService)
	riderService := services.NewRiderService(db, authService, tokenService)
	agentService := services.NewAgentService(db, authService)
	customerService := services.NewCustomerService(db)
	reportService := services.NewReportService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	adminController := controllers.NewAdminController(adminService, tokenService)
	superAdminController := controllers.NewSuperAdminController(adminService, reportService)
	riderController := controllers.NewRiderController(riderService)
	agentController := controllers.NewAgentController(agentService, reportService)
	customerController := controllers.NewCustomerController(customerService, reportService)

	// Build router
	router := routes.SetupRouter(
		authController,
		adminController,
		superAdminController,
		riderController,
		agentController,
		customerController,
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
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
