package domain

// HandoffRequest is a validated request to transfer a conversation from the
// automated agent to a human operator. It is immutable once it enters the
// pipeline; session_id is the queue partition key.
type HandoffRequest struct {
	UserMessage         string `json:"user_message"`
	ConversationHistory string `json:"conversation_history"`
	SessionID           string `json:"session_id"`
	Timestamp           string `json:"timestamp"`
}

// PersistedRecord is the durable representation of a handoff request. ID is
// derived deterministically from the request content so redelivered queue
// messages map to the same record.
type PersistedRecord struct {
	ID                  string
	UserMessage         string
	ConversationHistory string
	SessionID           string
	Timestamp           string
}

// NotificationMessage is the payload published to the operator fan-out topic.
// Fields are pointers: attributes missing from a change-capture image are
// forwarded as JSON null rather than dropping the record.
type NotificationMessage struct {
	UserMessage         *string `json:"user_message"`
	ConversationHistory *string `json:"conversation_history"`
	SessionID           *string `json:"session_id"`
	Timestamp           *string `json:"timestamp"`
}
