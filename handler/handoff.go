// Package handler contains the Lambda entry handlers for each pipeline
// stage. Handlers own protocol concerns only; stage behavior lives in the
// usecase layer.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/agent"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/usecase"
)

type publishService interface {
	Publish(ctx context.Context, req domain.HandoffRequest) (string, error)
}

// messageBody is the JSON body placed in agent response envelopes.
type messageBody struct {
	Message string `json:"message"`
}

// HandoffHandler accepts handoff action invocations from the agent runtime,
// normalizes them and hands them to the queue publisher.
type HandoffHandler struct {
	svc publishService
}

func NewHandoffHandler(svc publishService) (*HandoffHandler, error) {
	if svc == nil {
		return nil, errors.New("handler: publish service must not be nil")
	}
	return &HandoffHandler{svc: svc}, nil
}

// Handle extracts the handoff fields from the action's property list and
// publishes them. Every path returns the agent envelope with the event's
// routing fields echoed back.
func (h *HandoffHandler) Handle(ctx context.Context, event agent.Event) (agent.Response, error) {
	props, err := event.Properties()
	if err != nil {
		slog.Warn("rejected malformed handoff request", "err", err, "api_path", event.APIPath)
		return event.Respond(http.StatusBadRequest, messageBody{Message: "Invalid request body structure"})
	}

	req := domain.HandoffRequest{
		UserMessage:         props.Value("user_message"),
		ConversationHistory: props.Value("conversation_history"),
		SessionID:           props.Value("session_id"),
		Timestamp:           props.Value("timestamp"),
	}

	messageID, err := h.svc.Publish(ctx, req)
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) && ucErr.Code == usecase.ErrorValidation {
			slog.Warn("rejected incomplete handoff request", "reason", ucErr.Reason, "session_id", req.SessionID)
			return event.Respond(http.StatusBadRequest, messageBody{Message: ucErr.Reason})
		}
		slog.Error("handoff publish failed", "err", err, "session_id", req.SessionID)
		return event.Respond(http.StatusInternalServerError, messageBody{Message: "Error processing request"})
	}

	slog.Info("handoff request queued", "session_id", req.SessionID, "message_id", messageID)
	return event.Respond(http.StatusOK, messageBody{Message: "Data sent to SQS successfully!"})
}
