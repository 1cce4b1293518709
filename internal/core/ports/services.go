package ports

import (
	"context"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// WebhookEvent is the parsed inbound provider payload handed to the pipeline.
type WebhookEvent struct {
	EventType      string
	OpenID         int64
	Token          string
	Status         string
	Name           string
	CreatedAt      *string
	UpdatedAt      *string
	SignedAt       *string
	OriginalFile   *string
	SignedFile     *string
	CreatedByEmail string
	ExtraInfo      []byte // free-form JSON, stored as contract metadata
	RawPayload     []byte // exact bytes received, for the delivery log
	Signers        []WebhookSigner
}

// WebhookSigner is one participant entry in the inbound payload.
type WebhookSigner struct {
	Token        string
	ExternalID   *string
	Name         string
	Email        *string
	PhoneCountry *string
	Phone        *string
	CPF          *string
	CNPJ         *string
	Status       string
	SignURL      *string
	TimesViewed  int
	LastViewAt   *string
	SignedAt     *string
	IPAddress    *string
	GeoLatitude  *float64
	GeoLongitude *float64
}

// SignerResult is the tagged per-signer upsert outcome. Individual signer
// failures never abort the batch; they are collected here instead.
type SignerResult struct {
	Token  string
	Signer *domain.ContractSigner
	Err    error
}

// EventResult summarizes one fully processed delivery.
type EventResult struct {
	ContractID    uuid.UUID
	WorkspaceID   uuid.UUID
	ClientMatched bool
	Match         *domain.ClientMatch
	Signers       []SignerResult
}

// WebhookService runs the five-stage ingestion pipeline for one delivery:
// durable log, tenant resolution, contract+signer upsert, client matching,
// audit + log finalization.
type WebhookService interface {
	ProcessEvent(ctx context.Context, event *WebhookEvent, meta domain.RequestMeta) (*EventResult, error)
}

// ClientMatcher resolves a signer to an existing CRM client by trying the
// ordered matching strategies, stopping at the first hit. A nil match with a
// nil error is the expected no-match outcome.
type ClientMatcher interface {
	Match(ctx context.Context, workspaceID uuid.UUID, signer *domain.ContractSigner) (*domain.ClientMatch, error)
}
