// Package config loads per-lambda configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Publisher configures the handoff-publisher lambda.
type Publisher struct {
	QueueURL  string `env:"SQS_QUEUE_URL,required"`
	DedupMode string `env:"SQS_DEDUPLICATION" envDefault:"none"`
}

// Tracker configures the handoff-tracker lambda.
type Tracker struct {
	TableName string `env:"DYNAMODB_TABLE_NAME,required"`
}

// Notifier configures the handoff-notifier lambda. SubjectParam optionally
// names an SSM parameter holding the notification subject line.
type Notifier struct {
	TopicARN     string `env:"SNS_TOPIC_ARN,required"`
	SubjectParam string `env:"SUBJECT_PARAM_NAME"`
}

// AccountStatus configures the account-status lambda.
type AccountStatus struct {
	TableName string `env:"APPLICATIONS_TABLE_NAME" envDefault:"eazybank-applications"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}
