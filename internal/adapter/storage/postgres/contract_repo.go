package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ContractRepo implements ports.ContractRepository.
type ContractRepo struct {
	pool Pool
}

// NewContractRepo creates a new ContractRepo.
func NewContractRepo(pool Pool) *ContractRepo {
	return &ContractRepo{pool: pool}
}

const contractColumns = `id, workspace_id, zapsign_open_id, zapsign_token, name, code, contract_type,
	contract_value, status, client_id, matched_by, matching_confidence, original_file_url, signed_file_url,
	created_by_email, metadata, provider_created_at, provider_updated_at, signed_at, is_deleted, deleted_at,
	created_at, updated_at`

// Upsert inserts or updates the contract row keyed by
// (workspace_id, zapsign_open_id). ON CONFLICT resolution is what makes
// concurrent redelivery of the same envelope converge without locks. The
// client-match columns are deliberately absent from the update set: a
// replay must not clear an existing match.
func (r *ContractRepo) Upsert(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	query := `INSERT INTO contracts (id, workspace_id, zapsign_open_id, zapsign_token, name, code,
		contract_type, contract_value, status, original_file_url, signed_file_url, created_by_email,
		metadata, provider_created_at, provider_updated_at, signed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (workspace_id, zapsign_open_id) DO UPDATE SET
			zapsign_token = EXCLUDED.zapsign_token,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			original_file_url = EXCLUDED.original_file_url,
			signed_file_url = EXCLUDED.signed_file_url,
			metadata = EXCLUDED.metadata,
			provider_updated_at = EXCLUDED.provider_updated_at,
			signed_at = EXCLUDED.signed_at,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + contractColumns

	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx, query,
		c.ID, c.WorkspaceID, c.ZapSignOpenID, c.ZapSignToken, c.Name, c.Code,
		c.ContractType, c.ContractValue, c.Status, c.OriginalFileURL, c.SignedFileURL, c.CreatedByEmail,
		c.Metadata, c.ProviderCreatedAt, c.ProviderUpdatedAt, c.SignedAt, now, now,
	)

	stored, err := scanContract(row)
	if err != nil {
		return nil, fmt.Errorf("upsert contract: %w", err)
	}
	return stored, nil
}

// GetByOpenID fetches a contract by its provider envelope identifier.
func (r *ContractRepo) GetByOpenID(ctx context.Context, workspaceID uuid.UUID, openID int64) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts
		WHERE workspace_id = $1 AND zapsign_open_id = $2 AND is_deleted = false`

	c, err := scanContract(r.pool.QueryRow(ctx, query, workspaceID, openID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract by open_id: %w", err)
	}
	return c, nil
}

// SetClientMatch writes the identity-matching outcome back onto the contract.
func (r *ContractRepo) SetClientMatch(ctx context.Context, contractID uuid.UUID, match *domain.ClientMatch) error {
	query := `UPDATE contracts SET client_id = $1, matched_by = $2, matching_confidence = $3, updated_at = $4
		WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, match.ClientID, match.Source, match.Confidence, time.Now().UTC(), contractID)
	if err != nil {
		return fmt.Errorf("set client match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contract not found: %s", contractID)
	}
	return nil
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	c := &domain.Contract{}
	err := row.Scan(
		&c.ID, &c.WorkspaceID, &c.ZapSignOpenID, &c.ZapSignToken, &c.Name, &c.Code, &c.ContractType,
		&c.ContractValue, &c.Status, &c.ClientID, &c.MatchedBy, &c.MatchingConfidence,
		&c.OriginalFileURL, &c.SignedFileURL, &c.CreatedByEmail, &c.Metadata,
		&c.ProviderCreatedAt, &c.ProviderUpdatedAt, &c.SignedAt, &c.IsDeleted, &c.DeletedAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
