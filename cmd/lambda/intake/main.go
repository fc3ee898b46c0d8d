// Package main is the entry point for the request-intake Lambda function.
package main

import (
	"context"
	"log"

	"renovation_backend/internal/config"
	"renovation_backend/internal/gateway"
	"renovation_backend/internal/mailer"
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

	smtpCfg, err := config.LoadSMTPConfig()
	if err != nil {
		log.Fatalf("Failed to load SMTP config: %v", err)
	}
	var notifier service.Notifier
	if smtpCfg != nil {
		notifier = mailer.New(smtpCfg)
	} else {
		log.Println("SMTP not fully configured, admin notifications disabled")
	}

	requestRepo := repository.NewRequestRepository(pool, dbCfg.Schema)
	requestService := service.NewRequestService(requestRepo, notifier)
	h := gateway.NewIntakeHandler(requestService, config.DebugErrors())

	lambda.Start(h.Handle)
}
