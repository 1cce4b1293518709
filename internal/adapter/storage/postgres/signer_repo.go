package postgres

import (
	"context"
	"fmt"
	"time"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// SignerRepo implements ports.SignerRepository.
type SignerRepo struct {
	pool Pool
}

// NewSignerRepo creates a new SignerRepo.
func NewSignerRepo(pool Pool) *SignerRepo {
	return &SignerRepo{pool: pool}
}

const signerColumns = `id, contract_id, workspace_id, zapsign_token, external_id, name, email,
	phone_country, phone, cpf, cnpj, status, sign_url, times_viewed, last_view_at, signed_at,
	ip_address, geo_latitude, geo_longitude, created_at, updated_at`

// Upsert inserts or updates a signer row keyed by the provider's per-signer
// token, so redelivery converges.
func (r *SignerRepo) Upsert(ctx context.Context, s *domain.ContractSigner) (*domain.ContractSigner, error) {
	query := `INSERT INTO contract_signers (id, contract_id, workspace_id, zapsign_token, external_id,
		name, email, phone_country, phone, cpf, cnpj, status, sign_url, times_viewed, last_view_at,
		signed_at, ip_address, geo_latitude, geo_longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (zapsign_token) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone_country = EXCLUDED.phone_country,
			phone = EXCLUDED.phone,
			cpf = EXCLUDED.cpf,
			cnpj = EXCLUDED.cnpj,
			status = EXCLUDED.status,
			sign_url = EXCLUDED.sign_url,
			times_viewed = EXCLUDED.times_viewed,
			last_view_at = EXCLUDED.last_view_at,
			signed_at = EXCLUDED.signed_at,
			ip_address = EXCLUDED.ip_address,
			geo_latitude = EXCLUDED.geo_latitude,
			geo_longitude = EXCLUDED.geo_longitude,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + signerColumns

	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx, query,
		s.ID, s.ContractID, s.WorkspaceID, s.ZapSignToken, s.ExternalID,
		s.Name, s.Email, s.PhoneCountry, s.Phone, s.CPF, s.CNPJ, s.Status, s.SignURL,
		s.TimesViewed, s.LastViewAt, s.SignedAt, s.IPAddress, s.GeoLatitude, s.GeoLongitude, now, now,
	)

	stored := &domain.ContractSigner{}
	err := row.Scan(
		&stored.ID, &stored.ContractID, &stored.WorkspaceID, &stored.ZapSignToken, &stored.ExternalID,
		&stored.Name, &stored.Email, &stored.PhoneCountry, &stored.Phone, &stored.CPF, &stored.CNPJ,
		&stored.Status, &stored.SignURL, &stored.TimesViewed, &stored.LastViewAt, &stored.SignedAt,
		&stored.IPAddress, &stored.GeoLatitude, &stored.GeoLongitude, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert signer: %w", err)
	}
	return stored, nil
}

// ListByContract fetches all signers of a contract.
func (r *SignerRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.ContractSigner, error) {
	query := `SELECT ` + signerColumns + ` FROM contract_signers WHERE contract_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("list signers: %w", err)
	}
	defer rows.Close()

	var signers []domain.ContractSigner
	for rows.Next() {
		s := domain.ContractSigner{}
		err := rows.Scan(
			&s.ID, &s.ContractID, &s.WorkspaceID, &s.ZapSignToken, &s.ExternalID,
			&s.Name, &s.Email, &s.PhoneCountry, &s.Phone, &s.CPF, &s.CNPJ,
			&s.Status, &s.SignURL, &s.TimesViewed, &s.LastViewAt, &s.SignedAt,
			&s.IPAddress, &s.GeoLatitude, &s.GeoLongitude, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan signer row: %w", err)
		}
		signers = append(signers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate signer rows: %w", err)
	}
	return signers, nil
}
