package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/usecase"
)

type persistService interface {
	Persist(ctx context.Context, body string) (usecase.PersistOutcome, error)
}

// TrackerHandler drains handoff messages from the queue and persists them.
// Message outcomes are independent: a failed message is reported back to the
// event source for redelivery without blocking its batch siblings.
type TrackerHandler struct {
	svc persistService
}

func NewTrackerHandler(svc persistService) (*TrackerHandler, error) {
	if svc == nil {
		return nil, errors.New("handler: persist service must not be nil")
	}
	return &TrackerHandler{svc: svc}, nil
}

// Handle processes one delivery batch. Failed message ids are returned as
// batch item failures so only those stay visible for redelivery.
func (h *TrackerHandler) Handle(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	var failures []events.SQSBatchItemFailure
	for _, msg := range event.Records {
		out, err := h.svc.Persist(ctx, msg.Body)
		if err != nil {
			slog.Error("failed to persist handoff message", "err", err, "message_id", msg.MessageId)
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: msg.MessageId})
			continue
		}
		if out.Duplicate {
			slog.Warn("duplicate delivery, record already persisted", "record_id", out.RecordID, "message_id", msg.MessageId)
			continue
		}
		slog.Info("handoff request persisted", "record_id", out.RecordID, "message_id", msg.MessageId)
	}

	if len(failures) > 0 {
		slog.Error("batch completed with failures", "failed", len(failures), "total", len(event.Records))
	}
	return events.SQSEventResponse{BatchItemFailures: failures}, nil
}
