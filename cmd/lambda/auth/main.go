// Package main is the entry point for the auth Lambda function.
package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"renovation_backend/internal/config"
	"renovation_backend/internal/gateway"
	"renovation_backend/internal/repository"
	"renovation_backend/internal/service"
	"renovation_backend/internal/utils"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	ctx := context.Background()

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}
	pool, err := config.ConnectDB(ctx, dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours := int64(24)
	if s := os.Getenv("JWT_EXPIRATION_HOURS"); s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			jwtExpHours = parsed
		}
	}

	userRepo := repository.NewUserRepository(pool, dbCfg.Schema)
	authService := service.NewAuthService(userRepo, utils.NewJWTUtil(jwtSecret, jwtExpHours))
	h := gateway.NewAuthHandler(authService, config.DebugErrors())

	lambda.Start(h.Handle)
}
