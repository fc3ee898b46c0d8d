package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"renovation_backend/internal/config"
	"renovation_backend/internal/handler"
	"renovation_backend/internal/mailer"
	"renovation_backend/internal/middleware"
	"renovation_backend/internal/repository"
	"renovation_backend/internal/service"
	"renovation_backend/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	smtpCfg, err := config.LoadSMTPConfig()
	if err != nil {
		log.Fatalf("Failed to load SMTP config: %v", err)
	}
	if smtpCfg == nil {
		log.Println("SMTP not fully configured, admin notifications disabled")
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours := int64(24)
	if s := os.Getenv("JWT_EXPIRATION_HOURS"); s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			jwtExpHours = parsed
		} else {
			log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
		}
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	debug := config.DebugErrors()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(context.Background(), dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(context.Background(), dbPool, dbCfg.Schema); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool, dbCfg.Schema)
	requestRepo := repository.NewRequestRepository(dbPool, dbCfg.Schema)

	// --- Initialize Services ---
	var notifier service.Notifier
	if smtpCfg != nil {
		notifier = mailer.New(smtpCfg)
	}
	authService := service.NewAuthService(userRepo, jwtUtil)
	requestService := service.NewRequestService(requestRepo, notifier)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, debug)
	requestHandler := handler.NewRequestHandler(requestService, debug)

	// --- Setup Gin Router ---
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"POST", "GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	// --- Register Routes ---
	apiGroup := router.Group("/api/v1") // Base path for API
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	requestHandler.RegisterRequestRoutes(apiGroup)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
