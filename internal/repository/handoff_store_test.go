package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
)

type fakeDynamo struct {
	getOut       *dynamodb.GetItemOutput
	getErr       error
	putErr       error
	lastGetInput *dynamodb.GetItemInput
	lastPutInput *dynamodb.PutItemInput
	putCalls     int
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.lastGetInput = in
	return f.getOut, f.getErr
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPutInput = in
	f.putCalls++
	return &dynamodb.PutItemOutput{}, f.putErr
}

func makeRecord() domain.PersistedRecord {
	return domain.PersistedRecord{
		ID:                  "rec-1",
		UserMessage:         "need a human",
		ConversationHistory: "user: hi",
		SessionID:           "s1",
		Timestamp:           "2024-01-01T00:00:00Z",
	}
}

func mustNewHandoffStore(t *testing.T, db *fakeDynamo) *HandoffStore {
	t.Helper()
	s, err := NewHandoffStore(db, "handoff-requests")
	require.NoError(t, err)
	return s
}

func TestInsert_HappyPath(t *testing.T) {
	db := &fakeDynamo{}
	s := mustNewHandoffStore(t, db)

	err := s.Insert(context.Background(), makeRecord())
	require.NoError(t, err)
	require.Equal(t, "handoff-requests", *db.lastPutInput.TableName)
	require.Equal(t, "attribute_not_exists(id)", *db.lastPutInput.ConditionExpression)

	item := db.lastPutInput.Item
	require.Equal(t, "rec-1", item["id"].(*types.AttributeValueMemberS).Value)
	require.Equal(t, "need a human", item["user_message"].(*types.AttributeValueMemberS).Value)
	require.Equal(t, "user: hi", item["conversation_history"].(*types.AttributeValueMemberS).Value)
	require.Equal(t, "s1", item["session_id"].(*types.AttributeValueMemberS).Value)
	require.Equal(t, "2024-01-01T00:00:00Z", item["timestamp"].(*types.AttributeValueMemberS).Value)
}

func TestInsert_DuplicateID(t *testing.T) {
	db := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
	s := mustNewHandoffStore(t, db)

	err := s.Insert(context.Background(), makeRecord())
	require.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestInsert_WrappedDuplicateID(t *testing.T) {
	db := &fakeDynamo{putErr: fmt.Errorf("operation error DynamoDB: PutItem: %w", &types.ConditionalCheckFailedException{})}
	s := mustNewHandoffStore(t, db)

	err := s.Insert(context.Background(), makeRecord())
	require.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestInsert_DynamoError(t *testing.T) {
	db := &fakeDynamo{putErr: errors.New("ProvisionedThroughputExceededException")}
	s := mustNewHandoffStore(t, db)

	err := s.Insert(context.Background(), makeRecord())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDuplicateRecord)
	require.Contains(t, err.Error(), "Insert")
}

func TestInsert_MissingID(t *testing.T) {
	db := &fakeDynamo{}
	s := mustNewHandoffStore(t, db)

	err := s.Insert(context.Background(), domain.PersistedRecord{SessionID: "s1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "id is required")
	require.Zero(t, db.putCalls)
}

func TestNewHandoffStore_NilAPI(t *testing.T) {
	_, err := NewHandoffStore(nil, "handoff-requests")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be nil")
}

func TestNewHandoffStore_EmptyTableName(t *testing.T) {
	_, err := NewHandoffStore(&fakeDynamo{}, " ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be empty")
}
