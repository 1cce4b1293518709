package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEvent represents the kind of contract state change being audited.
type HistoryEvent string

const (
	HistoryEventSigned  HistoryEvent = "signed"
	HistoryEventUpdated HistoryEvent = "updated"
)

// ContractHistory is a write-once audit trail entry for one meaningful
// contract state change. Never mutated or deleted.
type ContractHistory struct {
	ID          uuid.UUID    `json:"id"`
	ContractID  uuid.UUID    `json:"contract_id"`
	WorkspaceID uuid.UUID    `json:"workspace_id"`
	Event       HistoryEvent `json:"event"`
	Description string       `json:"description"`
	OldValues   []byte       `json:"old_values,omitempty"` // JSON snapshot
	NewValues   []byte       `json:"new_values,omitempty"` // JSON snapshot
	Actor       string       `json:"actor"`
	CreatedAt   time.Time    `json:"created_at"`
}
