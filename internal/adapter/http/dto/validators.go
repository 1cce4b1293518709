package dto

import (
	"esign-webhook-gateway/pkg/apperror"
)

// Validate checks the envelope identifiers the pipeline cannot work without.
// Everything else in the payload is tolerated as-is.
func (p *ZapSignEvent) Validate() *apperror.AppError {
	if p.OpenID <= 0 {
		return apperror.ErrMissingEnvelopeID()
	}
	if p.Token == "" {
		return apperror.ErrInvalidPayload("token is required")
	}
	return nil
}
