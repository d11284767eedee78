package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/repository"
)

// recordNamespace is the fixed uuid5 namespace for handoff record ids.
var recordNamespace = uuid.MustParse("8a6e1b7c-2f50-4d8a-9c64-37e0a1b5d2f9")

// RecordWriter persists one handoff record; it must return
// repository.ErrDuplicateRecord when the record id already exists.
type RecordWriter interface {
	Insert(ctx context.Context, rec domain.PersistedRecord) error
}

// PersistService turns delivered queue message bodies into durable records.
// Record ids are derived from message content, so redelivering the same
// message under at-least-once semantics converges on a single record.
type PersistService struct {
	store RecordWriter
}

// PersistOutcome reports one message's persistence result. Duplicate marks a
// redelivery whose record already existed; the delivery is still considered
// handled and must be acknowledged.
type PersistOutcome struct {
	RecordID  string
	Duplicate bool
}

func NewPersistService(store RecordWriter) (*PersistService, error) {
	if store == nil {
		return nil, errors.New("usecase: record writer must not be nil")
	}
	return &PersistService{store: store}, nil
}

// RecordID derives the durable record id for a handoff request. The same
// content always yields the same id.
func RecordID(req domain.HandoffRequest) string {
	seed := req.SessionID + "\x00" + req.Timestamp + "\x00" + req.UserMessage
	return uuid.NewSHA1(recordNamespace, []byte(seed)).String()
}

// Persist parses one queue message body and writes its record. Field-level
// validation happened before the message entered the queue; only structural
// parse failures are rejected here.
func (s *PersistService) Persist(ctx context.Context, body string) (PersistOutcome, error) {
	var req domain.HandoffRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return PersistOutcome{}, newError(ErrorValidation, "malformed_message_body", err)
	}

	rec := domain.PersistedRecord{
		ID:                  RecordID(req),
		UserMessage:         req.UserMessage,
		ConversationHistory: req.ConversationHistory,
		SessionID:           req.SessionID,
		Timestamp:           req.Timestamp,
	}

	err := s.store.Insert(ctx, rec)
	if errors.Is(err, repository.ErrDuplicateRecord) {
		return PersistOutcome{RecordID: rec.ID, Duplicate: true}, nil
	}
	if err != nil {
		return PersistOutcome{}, newError(ErrorDependency, "dynamodb_write_error", err)
	}
	return PersistOutcome{RecordID: rec.ID}, nil
}
