package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
)

// DefaultSubject is the subject line attached to operator notifications
// unless overridden by configuration.
const DefaultSubject = "Human Agent Request (via DynamoDB Streams)"

// FanoutPublisher publishes one message to the operator fan-out channel.
type FanoutPublisher interface {
	Publish(ctx context.Context, subject, message string) (string, error)
}

// NotifyService forwards change-capture images to the operator fan-out
// topic. It performs no field validation: that happened upstream, and
// missing attributes are forwarded as nulls.
type NotifyService struct {
	fanout  FanoutPublisher
	subject string
}

func NewNotifyService(f FanoutPublisher, subject string) (*NotifyService, error) {
	if f == nil {
		return nil, errors.New("usecase: fanout publisher must not be nil")
	}
	if strings.TrimSpace(subject) == "" {
		subject = DefaultSubject
	}
	return &NotifyService{fanout: f, subject: subject}, nil
}

// Notify publishes one notification and returns the broker-assigned
// message id.
func (s *NotifyService) Notify(ctx context.Context, msg domain.NotificationMessage) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", newError(ErrorInternal, "marshal_notification", err)
	}

	messageID, err := s.fanout.Publish(ctx, s.subject, string(body))
	if err != nil {
		return "", newError(ErrorDependency, "sns_publish_error", err)
	}
	return messageID, nil
}
