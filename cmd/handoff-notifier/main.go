package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/handler"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/config"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/integrations/notify"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/integrations/paramstore"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	var cfg config.Notifier
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

	// Subject line is operator-editable via Parameter Store.
	subject := usecase.DefaultSubject
	if cfg.SubjectParam != "" {
		params, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			slog.Error("failed to create paramstore client", "err", err)
			os.Exit(1)
		}
		subject, err = params.GetParameterWithDefault(ctx, cfg.SubjectParam, usecase.DefaultSubject)
		if err != nil {
			slog.Error("failed to load notification subject", "err", err, "param", cfg.SubjectParam)
			os.Exit(1)
		}
	}

	// ---- Clients ----
	fanout, err := notify.New(awssns.NewFromConfig(awsCfg), cfg.TopicARN)
	if err != nil {
		slog.Error("failed to create fanout client", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	notifyService, err := usecase.NewNotifyService(fanout, subject)
	if err != nil {
		slog.Error("failed to create notify service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewNotifierHandler(notifyService)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
