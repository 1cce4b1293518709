package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Matching confidence tiers. Document matches are near-certain, email exact
// matches slightly less so; name similarity is scaled into a band that always
// ranks below both.
const (
	confidenceDocument = 0.95
	confidenceEmail    = 0.80

	nameSimilarityFloor  = 0.40
	nameConfidenceBase   = 0.30
	nameConfidenceFactor = 0.30
)

// ClientRepo implements ports.ClientRepository over the CRM client table.
// All lookups are read-only and workspace-scoped.
type ClientRepo struct {
	pool Pool
}

// NewClientRepo creates a new ClientRepo.
func NewClientRepo(pool Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// FindByDocument matches on the CPF/CNPJ tax document, digits only.
func (r *ClientRepo) FindByDocument(ctx context.Context, workspaceID uuid.UUID, document string) (*domain.ClientMatch, error) {
	normalized := digitsOnly(document)
	if normalized == "" {
		return nil, nil
	}

	query := `SELECT id FROM clients
		WHERE workspace_id = $1
		  AND (regexp_replace(COALESCE(cpf, ''), '\D', '', 'g') = $2
		    OR regexp_replace(COALESCE(cnpj, ''), '\D', '', 'g') = $2)
		ORDER BY created_at
		LIMIT 1`

	var clientID uuid.UUID
	err := r.pool.QueryRow(ctx, query, workspaceID, normalized).Scan(&clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find client by document: %w", err)
	}

	return &domain.ClientMatch{
		ClientID:   clientID,
		Source:     domain.MatchSourceDocument,
		Confidence: confidenceDocument,
	}, nil
}

// FindByEmail matches on the exact email, case-insensitive.
func (r *ClientRepo) FindByEmail(ctx context.Context, workspaceID uuid.UUID, email string) (*domain.ClientMatch, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}

	query := `SELECT id FROM clients
		WHERE workspace_id = $1 AND lower(email) = lower($2)
		ORDER BY created_at
		LIMIT 1`

	var clientID uuid.UUID
	err := r.pool.QueryRow(ctx, query, workspaceID, email).Scan(&clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find client by email: %w", err)
	}

	return &domain.ClientMatch{
		ClientID:   clientID,
		Source:     domain.MatchSourceEmail,
		Confidence: confidenceEmail,
	}, nil
}

// FindByName matches on pg_trgm name similarity, returning only the single
// best candidate above the similarity floor. Confidence is the similarity
// scaled into the lowest tier.
func (r *ClientRepo) FindByName(ctx context.Context, workspaceID uuid.UUID, name string) (*domain.ClientMatch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	query := `SELECT id, similarity(name, $2) AS sim FROM clients
		WHERE workspace_id = $1 AND similarity(name, $2) >= $3
		ORDER BY sim DESC, created_at
		LIMIT 1`

	var (
		clientID   uuid.UUID
		similarity float64
	)
	err := r.pool.QueryRow(ctx, query, workspaceID, name, nameSimilarityFloor).Scan(&clientID, &similarity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find client by name: %w", err)
	}

	return &domain.ClientMatch{
		ClientID:   clientID,
		Source:     domain.MatchSourceName,
		Confidence: nameConfidenceBase + nameConfidenceFactor*similarity,
	}, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
