package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/handler"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/config"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/integrations/queue"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	var cfg config.Publisher
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
	queueClient, err := queue.New(awssqs.NewFromConfig(awsCfg), cfg.QueueURL, queue.DedupMode(cfg.DedupMode))
	if err != nil {
		slog.Error("failed to create queue client", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	publishService, err := usecase.NewPublishService(queueClient)
	if err != nil {
		slog.Error("failed to create publish service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandoffHandler(publishService)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
