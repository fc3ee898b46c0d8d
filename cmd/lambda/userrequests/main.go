// Package main is the entry point for the user-requests Lambda function.
package main

import (
	"context"
	"log"

	"renovation_backend/internal/config"
	"renovation_backend/internal/gateway"
	"renovation_backend/internal/repository"
	"renovation_backend/internal/service"

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

	requestRepo := repository.NewRequestRepository(pool, dbCfg.Schema)
	requestService := service.NewRequestService(requestRepo, nil)
	h := gateway.NewUserRequestsHandler(requestService, config.DebugErrors())

	lambda.Start(h.Handle)
}
