package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// WebhookLogRepo implements ports.WebhookLogRepository.
type WebhookLogRepo struct {
	pool Pool
}

// NewWebhookLogRepo creates a new WebhookLogRepo.
func NewWebhookLogRepo(pool Pool) *WebhookLogRepo {
	return &WebhookLogRepo{pool: pool}
}

// Create inserts a new delivery log entry. One row per HTTP delivery,
// never reused.
func (r *WebhookLogRepo) Create(ctx context.Context, entry *domain.WebhookLogEntry) error {
	headers, err := json.Marshal(entry.Headers)
	if err != nil {
		return fmt.Errorf("marshal headers: %w", err)
	}

	query := `INSERT INTO webhook_logs (id, workspace_id, event_type, zapsign_open_id, zapsign_token,
		raw_payload, status, attempt, request_url, user_agent, source_ip, headers, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.pool.Exec(ctx, query,
		entry.ID, entry.WorkspaceID, entry.EventType, entry.ZapSignOpenID, entry.ZapSignToken,
		entry.RawPayload, entry.Status, entry.Attempt,
		entry.RequestURL, entry.UserAgent, entry.SourceIP, headers, entry.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook log: %w", err)
	}
	return nil
}

// MarkProcessing transitions an entry from received to processing.
func (r *WebhookLogRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE webhook_logs SET status = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, domain.WebhookLogStatusProcessing, id)
	if err != nil {
		return fmt.Errorf("mark webhook log processing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook log not found: %s", id)
	}
	return nil
}

// MarkProcessed stamps the terminal processed state and attaches the
// processed-data summary.
func (r *WebhookLogRepo) MarkProcessed(ctx context.Context, id uuid.UUID, processedPayload []byte) error {
	query := `UPDATE webhook_logs SET status = $1, processed_payload = $2, processed_at = $3 WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, domain.WebhookLogStatusProcessed, processedPayload, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("mark webhook log processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook log not found: %s", id)
	}
	return nil
}

// MarkFailed stamps the terminal error state with the failure message.
func (r *WebhookLogRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	query := `UPDATE webhook_logs SET status = $1, error_message = $2, processed_at = $3 WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, domain.WebhookLogStatusError, errMsg, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("mark webhook log failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook log not found: %s", id)
	}
	return nil
}

// CountByOpenID counts logged deliveries for an envelope.
func (r *WebhookLogRepo) CountByOpenID(ctx context.Context, openID int64) (int, error) {
	query := `SELECT COUNT(*) FROM webhook_logs WHERE zapsign_open_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, openID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count webhook logs: %w", err)
	}
	return count, nil
}
