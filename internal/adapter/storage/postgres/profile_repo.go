package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepo implements ports.ProfileRepository.
type ProfileRepo struct {
	pool Pool
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(pool Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// ActiveWorkspaceByEmail resolves a creator email to its currently active
// workspace. Returns nil, nil when the email maps to no profile or the
// profile has no active workspace selected; both mean the delivery cannot
// be attributed to a tenant.
func (r *ProfileRepo) ActiveWorkspaceByEmail(ctx context.Context, email string) (*uuid.UUID, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}

	query := `SELECT active_workspace_id FROM profiles WHERE lower(email) = lower($1)`

	var workspaceID *uuid.UUID
	err := r.pool.QueryRow(ctx, query, email).Scan(&workspaceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve workspace by email: %w", err)
	}
	return workspaceID, nil
}
