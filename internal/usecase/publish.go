package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
)

// QueuePublisher publishes one message body under an ordering group id.
type QueuePublisher interface {
	Publish(ctx context.Context, groupID, body string) (string, error)
}

// PublishService validates handoff requests and publishes them to the
// ordered queue. The session id is the ordering group: events for the same
// conversation reach the persister in publish order.
type PublishService struct {
	queue QueuePublisher
}

func NewPublishService(q QueuePublisher) (*PublishService, error) {
	if q == nil {
		return nil, errors.New("usecase: queue publisher must not be nil")
	}
	return &PublishService{queue: q}, nil
}

// MissingFields returns the names of required handoff fields that are absent
// or blank, in a stable order.
func MissingFields(req domain.HandoffRequest) []string {
	var missing []string
	if strings.TrimSpace(req.UserMessage) == "" {
		missing = append(missing, "user_message")
	}
	if strings.TrimSpace(req.SessionID) == "" {
		missing = append(missing, "session_id")
	}
	if strings.TrimSpace(req.Timestamp) == "" {
		missing = append(missing, "timestamp")
	}
	return missing
}

// Publish validates req and enqueues it, returning the broker-assigned
// message id. Validation failures never reach the queue.
func (s *PublishService) Publish(ctx context.Context, req domain.HandoffRequest) (string, error) {
	if missing := MissingFields(req); len(missing) > 0 {
		reason := fmt.Sprintf("missing required parameters: %s", strings.Join(missing, ", "))
		return "", newError(ErrorValidation, reason, nil)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", newError(ErrorInternal, "marshal_handoff_request", err)
	}

	messageID, err := s.queue.Publish(ctx, req.SessionID, string(body))
	if err != nil {
		return "", newError(ErrorDependency, "sqs_publish_error", err)
	}
	return messageID, nil
}
