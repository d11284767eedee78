package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
)

// dynamodbAPI is the minimal DynamoDB interface required by the stores.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ErrDuplicateRecord reports an insert whose id already exists. Under
// at-least-once queue delivery this means the record was persisted by an
// earlier delivery of the same message.
var ErrDuplicateRecord = errors.New("repository: record already exists")

// HandoffStore wraps the DynamoDB table holding persisted handoff requests.
type HandoffStore struct {
	api       dynamodbAPI
	tableName string
}

// NewHandoffStore creates a HandoffStore for the given table.
func NewHandoffStore(api dynamodbAPI, tableName string) (*HandoffStore, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &HandoffStore{api: api, tableName: tableName}, nil
}

// Insert writes one record, conditional on its id not existing yet. Returns
// ErrDuplicateRecord when the id is already present, leaving the stored
// record untouched.
func (s *HandoffStore) Insert(ctx context.Context, rec domain.PersistedRecord) error {
	if rec.ID == "" {
		return errors.New("repository: Insert: record id is required")
	}

	_, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                recordItem(rec),
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("repository: Insert: %w", err)
	}
	return nil
}

func recordItem(rec domain.PersistedRecord) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":                   &types.AttributeValueMemberS{Value: rec.ID},
		"user_message":         &types.AttributeValueMemberS{Value: rec.UserMessage},
		"conversation_history": &types.AttributeValueMemberS{Value: rec.ConversationHistory},
		"session_id":           &types.AttributeValueMemberS{Value: rec.SessionID},
		"timestamp":            &types.AttributeValueMemberS{Value: rec.Timestamp},
	}
}
