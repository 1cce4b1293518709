package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is the read model of a CRM client record. The pipeline only reads
// these rows during identity matching; ownership stays with the CRM.
type Client struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	CPF         *string   `json:"cpf,omitempty"`
	CNPJ        *string   `json:"cnpj,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile maps a user email to its currently active workspace. Used as the
// pipeline's single authorization boundary: a webhook whose creator email
// resolves to no profile is rejected outright.
type Profile struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	ActiveWorkspaceID *uuid.UUID `json:"active_workspace_id,omitempty"`
}
