// Package queue publishes handoff events to the ordered SQS FIFO queue.
package queue

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// sqsAPI is the minimal SQS interface required by Client.
// *sqs.Client from aws-sdk-go-v2 satisfies this interface.
type sqsAPI interface {
	SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// DedupMode selects how a message deduplication id is assigned at publish
// time. The default leaves deduplication to the queue's own configuration.
type DedupMode string

const (
	// DedupNone sets no deduplication id; the queue's content-based
	// deduplication setting (if enabled) applies.
	DedupNone DedupMode = "none"
	// DedupContent sets the deduplication id to a digest of the message
	// body, deduplicating identical publishes within the queue's window.
	DedupContent DedupMode = "content"
)

// Client wraps an SQS FIFO queue for ordered publishing.
type Client struct {
	api      sqsAPI
	queueURL string
	dedup    DedupMode
}

// New creates a Client for the given queue URL.
func New(api sqsAPI, queueURL string, dedup DedupMode) (*Client, error) {
	if api == nil {
		return nil, errors.New("queue: api must not be nil")
	}
	if strings.TrimSpace(queueURL) == "" {
		return nil, errors.New("queue: queue URL must not be empty")
	}
	switch dedup {
	case "", DedupNone:
		dedup = DedupNone
	case DedupContent:
	default:
		return nil, fmt.Errorf("queue: unknown dedup mode %q", dedup)
	}
	return &Client{api: api, queueURL: queueURL, dedup: dedup}, nil
}

// Publish sends one message under the given group id. Messages sharing a
// group id are delivered to consumers in publish order; there is no internal
// retry, absence of an error is the only delivery acknowledgment.
func (c *Client) Publish(ctx context.Context, groupID, body string) (string, error) {
	if strings.TrimSpace(groupID) == "" {
		return "", errors.New("queue: group id is required")
	}

	in := &sqs.SendMessageInput{
		QueueUrl:       aws.String(c.queueURL),
		MessageBody:    aws.String(body),
		MessageGroupId: aws.String(groupID),
	}
	if c.dedup == DedupContent {
		sum := sha256.Sum256([]byte(body))
		in.MessageDeduplicationId = aws.String(hex.EncodeToString(sum[:]))
	}

	out, err := c.api.SendMessage(ctx, in)
	if err != nil {
		return "", fmt.Errorf("queue: send message: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
