package ports

import (
	"context"
	"time"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// WebhookLogRepository defines persistence for webhook delivery log entries.
// Entries are append-only across deliveries; a single entry's status advances
// in place until it reaches a terminal state.
type WebhookLogRepository interface {
	Create(ctx context.Context, entry *domain.WebhookLogEntry) error
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkProcessed(ctx context.Context, id uuid.UUID, processedPayload []byte) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	// CountByOpenID returns how many deliveries have been logged for an
	// envelope, used to stamp the attempt counter on new entries.
	CountByOpenID(ctx context.Context, openID int64) (int, error)
}

// ContractRepository defines persistence for contracts. Upsert is keyed by
// (workspace_id, zapsign_open_id): re-delivery of the same envelope must
// converge onto one row, never duplicate. The upsert never touches the
// client-match columns; those are written only through SetClientMatch.
type ContractRepository interface {
	Upsert(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	GetByOpenID(ctx context.Context, workspaceID uuid.UUID, openID int64) (*domain.Contract, error)
	SetClientMatch(ctx context.Context, contractID uuid.UUID, match *domain.ClientMatch) error
}

// SignerRepository defines persistence for contract signers. Upsert is keyed
// by the provider's per-signer token.
type SignerRepository interface {
	Upsert(ctx context.Context, signer *domain.ContractSigner) (*domain.ContractSigner, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.ContractSigner, error)
}

// ClientRepository exposes the three identity-matching lookups over the CRM
// client table. Each returns at most one best candidate, or nil when the
// strategy finds nothing.
type ClientRepository interface {
	FindByDocument(ctx context.Context, workspaceID uuid.UUID, document string) (*domain.ClientMatch, error)
	FindByEmail(ctx context.Context, workspaceID uuid.UUID, email string) (*domain.ClientMatch, error)
	FindByName(ctx context.Context, workspaceID uuid.UUID, name string) (*domain.ClientMatch, error)
}

// ProfileRepository resolves a creator email to its active workspace.
type ProfileRepository interface {
	ActiveWorkspaceByEmail(ctx context.Context, email string) (*uuid.UUID, error)
}

// HistoryRepository defines persistence for the contract audit trail.
type HistoryRepository interface {
	Create(ctx context.Context, entry *domain.ContractHistory) error
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.ContractHistory, error)
}

// WorkspaceCache is the Redis-layer cache for creator-email -> workspace
// resolution (fast path). Errors are treated as cache misses.
type WorkspaceCache interface {
	Get(ctx context.Context, email string) (*uuid.UUID, error) // nil, nil on miss
	Set(ctx context.Context, email string, workspaceID uuid.UUID, ttl time.Duration) error
}
