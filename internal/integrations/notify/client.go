// Package notify publishes operator notifications to the SNS fan-out topic.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// snsAPI is the minimal SNS interface required by Client.
// *sns.Client from aws-sdk-go-v2 satisfies this interface.
type snsAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Client wraps an SNS topic for fan-out publishing.
type Client struct {
	api      snsAPI
	topicARN string
}

// New creates a Client for the given topic ARN.
func New(api snsAPI, topicARN string) (*Client, error) {
	if api == nil {
		return nil, errors.New("notify: api must not be nil")
	}
	if strings.TrimSpace(topicARN) == "" {
		return nil, errors.New("notify: topic ARN must not be empty")
	}
	return &Client{api: api, topicARN: topicARN}, nil
}

// Publish sends one message with the given subject line to the topic and
// returns the broker-assigned message id.
func (c *Client) Publish(ctx context.Context, subject, message string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("notify: subject is required")
	}

	out, err := c.api.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(c.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return "", fmt.Errorf("notify: publish: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
