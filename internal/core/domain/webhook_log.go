package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookLogStatus represents the processing state of one inbound delivery.
type WebhookLogStatus string

const (
	WebhookLogStatusReceived   WebhookLogStatus = "received"
	WebhookLogStatusProcessing WebhookLogStatus = "processing"
	WebhookLogStatusProcessed  WebhookLogStatus = "processed"
	WebhookLogStatusError      WebhookLogStatus = "error"
)

// IsTerminal returns true if the log entry reached a final state.
func (s WebhookLogStatus) IsTerminal() bool {
	return s == WebhookLogStatusProcessed || s == WebhookLogStatusError
}

// RequestMeta captures where a delivery came from.
type RequestMeta struct {
	URL       string            `json:"url"`
	UserAgent string            `json:"user_agent"`
	SourceIP  string            `json:"source_ip"`
	Headers   map[string]string `json:"headers"`
}

// WebhookLogEntry is the append-only record of one inbound webhook call.
// Exactly one row is created per HTTP delivery; only its status, error
// message, processed payload and processed timestamp are mutated as the
// pipeline advances. Lifecycle: received -> processing -> processed|error.
type WebhookLogEntry struct {
	ID               uuid.UUID        `json:"id"`
	WorkspaceID      *uuid.UUID       `json:"workspace_id,omitempty"`
	EventType        string           `json:"event_type"`
	ZapSignOpenID    int64            `json:"zapsign_open_id"`
	ZapSignToken     string           `json:"zapsign_token"`
	RawPayload       []byte           `json:"raw_payload"`
	ProcessedPayload []byte           `json:"processed_payload,omitempty"`
	Status           WebhookLogStatus `json:"status"`
	ErrorMessage     *string          `json:"error_message,omitempty"`
	Attempt          int              `json:"attempt"`
	RequestURL       string           `json:"request_url"`
	UserAgent        string           `json:"user_agent"`
	SourceIP         string           `json:"source_ip"`
	Headers          map[string]string `json:"headers,omitempty"`
	ReceivedAt       time.Time        `json:"received_at"`
	ProcessedAt      *time.Time       `json:"processed_at,omitempty"`
}
