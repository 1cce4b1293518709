package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContractStatus represents the lifecycle state of an e-signature envelope.
type ContractStatus string

const (
	ContractStatusPending  ContractStatus = "pending"
	ContractStatusSigned   ContractStatus = "signed"
	ContractStatusRejected ContractStatus = "rejected"
	ContractStatusExpired  ContractStatus = "expired"
)

// IsTerminal returns true if the contract is in a final state.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusSigned || s == ContractStatusRejected || s == ContractStatusExpired
}

// MatchSource identifies which strategy linked a contract to a CRM client.
type MatchSource string

const (
	MatchSourceDocument MatchSource = "document_number"
	MatchSourceEmail    MatchSource = "email"
	MatchSourceName     MatchSource = "name"
	MatchSourceManual   MatchSource = "manual"
)

// ClientMatch is the outcome of one identity-matching strategy: at most one
// candidate client with a confidence score in [0,1] and its provenance.
type ClientMatch struct {
	ClientID   uuid.UUID   `json:"client_id"`
	Source     MatchSource `json:"matched_by"`
	Confidence float64     `json:"confidence"`
}

// Contract is one row per external e-signature envelope, keyed uniquely by
// the provider's open_id within a workspace. Repeated webhook deliveries for
// the same envelope converge onto this row via upsert.
type Contract struct {
	ID                 uuid.UUID      `json:"id"`
	WorkspaceID        uuid.UUID      `json:"workspace_id"`
	ZapSignOpenID      int64          `json:"zapsign_open_id"`
	ZapSignToken       string         `json:"zapsign_token"`
	Name               string         `json:"name"`
	Code               *string        `json:"code,omitempty"`
	ContractType       *string        `json:"contract_type,omitempty"`
	ContractValue      *int64         `json:"contract_value,omitempty"` // in centavos
	Status             ContractStatus `json:"status"`
	ClientID           *uuid.UUID     `json:"client_id,omitempty"`
	MatchedBy          *MatchSource   `json:"matched_by,omitempty"`
	MatchingConfidence *float64       `json:"matching_confidence,omitempty"`
	OriginalFileURL    *string        `json:"original_file_url,omitempty"`
	SignedFileURL      *string        `json:"signed_file_url,omitempty"`
	CreatedByEmail     string         `json:"created_by_email"`
	Metadata           []byte         `json:"metadata,omitempty"` // free-form JSON from extra_info
	ProviderCreatedAt  *time.Time     `json:"provider_created_at,omitempty"`
	ProviderUpdatedAt  *time.Time     `json:"provider_updated_at,omitempty"`
	SignedAt           *time.Time     `json:"signed_at,omitempty"`
	IsDeleted          bool           `json:"is_deleted"`
	DeletedAt          *time.Time     `json:"deleted_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Linked returns true if the contract has been matched to a CRM client.
func (c *Contract) Linked() bool {
	return c.ClientID != nil
}

// SignerStatus represents the signature state of one envelope participant.
type SignerStatus string

const (
	SignerStatusPending  SignerStatus = "pending"
	SignerStatusSigned   SignerStatus = "signed"
	SignerStatusRejected SignerStatus = "rejected"
)

// ContractSigner is one row per envelope participant, keyed uniquely by the
// provider's per-signer token.
type ContractSigner struct {
	ID             uuid.UUID    `json:"id"`
	ContractID     uuid.UUID    `json:"contract_id"`
	WorkspaceID    uuid.UUID    `json:"workspace_id"`
	ZapSignToken   string       `json:"zapsign_token"`
	ExternalID     *string      `json:"external_id,omitempty"`
	Name           string       `json:"name"`
	Email          *string      `json:"email,omitempty"`
	PhoneCountry   *string      `json:"phone_country,omitempty"`
	Phone          *string      `json:"phone,omitempty"`
	CPF            *string      `json:"cpf,omitempty"`
	CNPJ           *string      `json:"cnpj,omitempty"`
	Status         SignerStatus `json:"status"`
	SignURL        *string      `json:"sign_url,omitempty"`
	TimesViewed    int          `json:"times_viewed"`
	LastViewAt     *time.Time   `json:"last_view_at,omitempty"`
	SignedAt       *time.Time   `json:"signed_at,omitempty"`
	IPAddress      *string      `json:"ip_address,omitempty"`
	GeoLatitude    *float64     `json:"geo_latitude,omitempty"`
	GeoLongitude   *float64     `json:"geo_longitude,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Document returns the signer's tax document (CPF preferred over CNPJ),
// or empty string when neither is present.
func (s *ContractSigner) Document() string {
	if s.CPF != nil && *s.CPF != "" {
		return *s.CPF
	}
	if s.CNPJ != nil && *s.CNPJ != "" {
		return *s.CNPJ
	}
	return ""
}
