package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
)

type notifyService interface {
	Notify(ctx context.Context, msg domain.NotificationMessage) (string, error)
}

// NotifierHandler observes change-capture batches from the persistence store
// and forwards insert/update images to the operator fan-out topic. Removals
// are deliberately not forwarded.
type NotifierHandler struct {
	svc notifyService
}

func NewNotifierHandler(svc notifyService) (*NotifierHandler, error) {
	if svc == nil {
		return nil, errors.New("handler: notify service must not be nil")
	}
	return &NotifierHandler{svc: svc}, nil
}

// Handle processes one stream batch. Failed event ids are returned as batch
// item failures so only those are redelivered.
func (h *NotifierHandler) Handle(ctx context.Context, event events.DynamoDBEvent) (events.DynamoDBEventResponse, error) {
	var failures []events.DynamoDBBatchItemFailure
	for _, rec := range event.Records {
		switch rec.EventName {
		case "INSERT", "MODIFY":
			image := rec.Change.NewImage
			if len(image) == 0 {
				slog.Warn("change record has no new image", "event_id", rec.EventID)
				continue
			}
			messageID, err := h.svc.Notify(ctx, notificationFromImage(image))
			if err != nil {
				slog.Error("failed to publish operator notification", "err", err, "event_id", rec.EventID)
				failures = append(failures, events.DynamoDBBatchItemFailure{ItemIdentifier: rec.EventID})
				continue
			}
			slog.Info("operator notification published", "event_id", rec.EventID, "message_id", messageID)
		case "REMOVE":
			slog.Info("record removed, no notification sent", "event_id", rec.EventID)
		default:
			slog.Warn("unhandled stream event type", "event_name", rec.EventName, "event_id", rec.EventID)
		}
	}

	if len(failures) > 0 {
		slog.Error("batch completed with failures", "failed", len(failures), "total", len(event.Records))
	}
	return events.DynamoDBEventResponse{BatchItemFailures: failures}, nil
}

// notificationFromImage copies the after image into a notification. Missing
// attributes stay nil and serialize as JSON null.
func notificationFromImage(image map[string]events.DynamoDBAttributeValue) domain.NotificationMessage {
	return domain.NotificationMessage{
		UserMessage:         imageString(image, "user_message"),
		ConversationHistory: imageString(image, "conversation_history"),
		SessionID:           imageString(image, "session_id"),
		Timestamp:           imageString(image, "timestamp"),
	}
}

func imageString(image map[string]events.DynamoDBAttributeValue, key string) *string {
	v, ok := image[key]
	if !ok || v.DataType() != events.DataTypeString {
		return nil
	}
	s := v.String()
	return &s
}
