package dto

import (
	"encoding/json"

	"esign-webhook-gateway/internal/core/ports"
)

// ZapSignEvent mirrors the provider's webhook payload. Every field beyond the
// envelope identifiers is optional: ZapSign varies the shape per event type
// and has added fields over time, so unknown keys are ignored and absent ones
// stay nil.
type ZapSignEvent struct {
	EventType    string          `json:"event_type"`
	OpenID       int64           `json:"open_id"`
	Token        string          `json:"token"`
	Status       string          `json:"status"`
	Name         string          `json:"name"`
	CreatedAt    *string         `json:"created_at,omitempty"`
	LastUpdateAt *string         `json:"last_update_at,omitempty"`
	SignedAt     *string         `json:"signed_at,omitempty"`
	OriginalFile *FileRef        `json:"original_file,omitempty"`
	SignedFile   *FileRef        `json:"signed_file,omitempty"`
	CreatedBy    *CreatedBy      `json:"created_by,omitempty"`
	ExtraInfo    json.RawMessage `json:"extra_info,omitempty"`
	Signers      []ZapSignSigner `json:"signers,omitempty"`
}

// FileRef points at a document artifact hosted by the provider.
type FileRef struct {
	URL string `json:"url"`
}

// CreatedBy identifies the account that created the envelope. Its email is
// the tenant-resolution key.
type CreatedBy struct {
	Email string `json:"email"`
}

// ZapSignSigner is one participant entry in the payload.
type ZapSignSigner struct {
	Token        string   `json:"token"`
	ExternalID   *string  `json:"external_id,omitempty"`
	Name         string   `json:"name"`
	Email        *string  `json:"email,omitempty"`
	PhoneCountry *string  `json:"phone_country,omitempty"`
	PhoneNumber  *string  `json:"phone_number,omitempty"`
	CPF          *string  `json:"cpf,omitempty"`
	CNPJ         *string  `json:"cnpj,omitempty"`
	Status       string   `json:"status"`
	SignURL      *string  `json:"sign_url,omitempty"`
	TimesViewed  int      `json:"times_viewed"`
	LastViewAt   *string  `json:"last_view_at,omitempty"`
	SignedAt     *string  `json:"signed_at,omitempty"`
	IPAddress    *string  `json:"ip_address,omitempty"`
	GeoLatitude  *float64 `json:"geo_latitude,omitempty"`
	GeoLongitude *float64 `json:"geo_longitude,omitempty"`
}

// ToEvent converts the wire payload into the pipeline's event form. raw is
// the exact body as received, preserved for the delivery log.
func (p *ZapSignEvent) ToEvent(raw []byte) *ports.WebhookEvent {
	event := &ports.WebhookEvent{
		EventType:  p.EventType,
		OpenID:     p.OpenID,
		Token:      p.Token,
		Status:     p.Status,
		Name:       p.Name,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.LastUpdateAt,
		SignedAt:   p.SignedAt,
		ExtraInfo:  p.ExtraInfo,
		RawPayload: raw,
	}
	if p.OriginalFile != nil && p.OriginalFile.URL != "" {
		event.OriginalFile = &p.OriginalFile.URL
	}
	if p.SignedFile != nil && p.SignedFile.URL != "" {
		event.SignedFile = &p.SignedFile.URL
	}
	if p.CreatedBy != nil {
		event.CreatedByEmail = p.CreatedBy.Email
	}
	for _, s := range p.Signers {
		event.Signers = append(event.Signers, ports.WebhookSigner{
			Token:        s.Token,
			ExternalID:   s.ExternalID,
			Name:         s.Name,
			Email:        s.Email,
			PhoneCountry: s.PhoneCountry,
			Phone:        s.PhoneNumber,
			CPF:          s.CPF,
			CNPJ:         s.CNPJ,
			Status:       s.Status,
			SignURL:      s.SignURL,
			TimesViewed:  s.TimesViewed,
			LastViewAt:   s.LastViewAt,
			SignedAt:     s.SignedAt,
			IPAddress:    s.IPAddress,
			GeoLatitude:  s.GeoLatitude,
			GeoLongitude: s.GeoLongitude,
		})
	}
	return event
}
