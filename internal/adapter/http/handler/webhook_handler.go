package handler

import (
	"encoding/json"
	"io"

	"esign-webhook-gateway/internal/adapter/http/dto"
	"esign-webhook-gateway/internal/core/domain"
	"esign-webhook-gateway/internal/core/ports"
	"esign-webhook-gateway/pkg/apperror"
	"esign-webhook-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookHandler handles inbound ZapSign webhook deliveries.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc, log: log}
}

// Receive handles POST /webhooks/zapsign. The raw body is read once so the
// exact delivered bytes land in the delivery log, then parsed into the
// provider payload shape.
func (h *WebhookHandler) Receive(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.ErrInvalidPayload("cannot read request body"))
		return
	}

	var payload dto.ZapSignEvent
	if err := json.Unmarshal(raw, &payload); err != nil {
		response.Error(c, apperror.ErrInvalidPayload("malformed JSON payload"))
		return
	}
	if appErr := payload.Validate(); appErr != nil {
		response.Error(c, appErr)
		return
	}

	meta := domain.RequestMeta{
		URL:       c.Request.URL.String(),
		UserAgent: c.Request.UserAgent(),
		SourceIP:  c.ClientIP(),
		Headers:   flattenHeaders(c),
	}

	result, err := h.webhookSvc.ProcessEvent(c.Request.Context(), payload.ToEvent(raw), meta)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.log.Info().
		Str("contract_id", result.ContractID.String()).
		Str("workspace_id", result.WorkspaceID.String()).
		Bool("client_matched", result.ClientMatched).
		Str("event_type", payload.EventType).
		Msg("webhook processed")

	response.Ack(c, result.ContractID, "Webhook processed successfully")
}

// flattenHeaders keeps the first value of each request header for the
// delivery log.
func flattenHeaders(c *gin.Context) map[string]string {
	headers := make(map[string]string, len(c.Request.Header))
	for name, values := range c.Request.Header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}
	return headers
}
