package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/handler"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/config"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/repository"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	var cfg config.Tracker
	if err := config.ParseEnv(&cfg); err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	// ---- AWS SDK config ----
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	store, err := repository.NewHandoffStore(awsdynamodb.NewFromConfig(awsCfg), cfg.TableName)
	if err != nil {
		slog.Error("failed to create handoff store", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	persistService, err := usecase.NewPersistService(store)
	if err != nil {
		slog.Error("failed to create persist service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewTrackerHandler(persistService)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
