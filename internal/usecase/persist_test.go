package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/repository"
)

type mockStore struct {
	errs     []error
	calls    int
	inserted []domain.PersistedRecord
}

func (m *mockStore) Insert(_ context.Context, rec domain.PersistedRecord) error {
	idx := m.calls
	m.calls++
	m.inserted = append(m.inserted, rec)
	if idx < len(m.errs) {
		return m.errs[idx]
	}
	return nil
}

const messageBody = `{"user_message":"need a human","conversation_history":"user: hi","session_id":"s1","timestamp":"2024-01-01T00:00:00Z"}`

func TestPersist_HappyPath(t *testing.T) {
	store := &mockStore{}
	s, err := NewPersistService(store)
	require.NoError(t, err)

	out, err := s.Persist(context.Background(), messageBody)
	require.NoError(t, err)
	require.False(t, out.Duplicate)
	require.NotEmpty(t, out.RecordID)

	require.Len(t, store.inserted, 1)
	rec := store.inserted[0]
	require.Equal(t, out.RecordID, rec.ID)
	require.Equal(t, "need a human", rec.UserMessage)
	require.Equal(t, "user: hi", rec.ConversationHistory)
	require.Equal(t, "s1", rec.SessionID)
	require.Equal(t, "2024-01-01T00:00:00Z", rec.Timestamp)
}

func TestPersist_RedeliverySameMessageYieldsOneRecord(t *testing.T) {
	// First delivery inserts; the redelivery hits the duplicate condition
	// and is acknowledged without a second record.
	store := &mockStore{errs: []error{nil, repository.ErrDuplicateRecord}}
	s, err := NewPersistService(store)
	require.NoError(t, err)

	first, err := s.Persist(context.Background(), messageBody)
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	second, err := s.Persist(context.Background(), messageBody)
	require.NoError(t, err)
	require.True(t, second.Duplicate)
	require.Equal(t, first.RecordID, second.RecordID)
}

func TestPersist_MalformedBody(t *testing.T) {
	store := &mockStore{}
	s, err := NewPersistService(store)
	require.NoError(t, err)

	_, err = s.Persist(context.Background(), "not-json")
	var ucErr *Error
	require.ErrorAs(t, err, &ucErr)
	require.Equal(t, ErrorValidation, ucErr.Code)
	require.Zero(t, store.calls)
}

func TestPersist_StoreError(t *testing.T) {
	store := &mockStore{errs: []error{errors.New("table missing")}}
	s, err := NewPersistService(store)
	require.NoError(t, err)

	_, err = s.Persist(context.Background(), messageBody)
	var ucErr *Error
	require.ErrorAs(t, err, &ucErr)
	require.Equal(t, ErrorDependency, ucErr.Code)
}

func TestRecordID_DeterministicPerContent(t *testing.T) {
	a := domain.HandoffRequest{UserMessage: "need a human", SessionID: "s1", Timestamp: "2024-01-01T00:00:00Z"}
	b := a
	require.Equal(t, RecordID(a), RecordID(b))

	b.Timestamp = "2024-01-01T00:00:01Z"
	require.NotEqual(t, RecordID(a), RecordID(b))

	c := a
	c.SessionID = "s2"
	require.NotEqual(t, RecordID(a), RecordID(c))
}

func TestRecordID_IsUUID(t *testing.T) {
	id := RecordID(domain.HandoffRequest{UserMessage: "m", SessionID: "s", Timestamp: "t"})
	require.Len(t, id, 36)
}

func TestNewPersistService_NilStore(t *testing.T) {
	_, err := NewPersistService(nil)
	require.Error(t, err)
}
