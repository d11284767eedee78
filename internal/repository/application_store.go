package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
)

// ErrApplicationNotFound reports a lookup for a phone number with no
// application on file.
var ErrApplicationNotFound = errors.New("repository: application not found")

// ApplicationStore wraps the DynamoDB table holding account applications,
// keyed by phone number.
type ApplicationStore struct {
	api       dynamodbAPI
	tableName string
}

// NewApplicationStore creates an ApplicationStore for the given table.
func NewApplicationStore(api dynamodbAPI, tableName string) (*ApplicationStore, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &ApplicationStore{api: api, tableName: tableName}, nil
}

// GetApplication fetches the application keyed by phoneNumber. All item
// attributes are flattened to strings for the agent response.
func (s *ApplicationStore) GetApplication(ctx context.Context, phoneNumber string) (domain.Application, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return domain.Application{}, errors.New("repository: GetApplication: phone number is required")
	}

	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"phone_no": &types.AttributeValueMemberN{Value: phoneNumber},
		},
	})
	if err != nil {
		return domain.Application{}, fmt.Errorf("repository: GetApplication: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.Application{}, ErrApplicationNotFound
	}

	attrs := make(map[string]string, len(out.Item))
	for key, value := range out.Item {
		attrs[key] = scalarString(value)
	}
	return domain.Application{PhoneNumber: phoneNumber, Attributes: attrs}, nil
}

// scalarString renders a DynamoDB attribute as a plain string. Non-scalar
// attributes fall back to an empty string; the applications table only
// carries scalars.
func scalarString(value types.AttributeValue) string {
	switch v := value.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	case *types.AttributeValueMemberBOOL:
		return strconv.FormatBool(v.Value)
	default:
		return ""
	}
}
