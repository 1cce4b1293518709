package postgres

import (
	"context"
	"fmt"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// HistoryRepo implements ports.HistoryRepository. Rows are write-once.
type HistoryRepo struct {
	pool Pool
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo(pool Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

// Create appends one audit trail entry.
func (r *HistoryRepo) Create(ctx context.Context, entry *domain.ContractHistory) error {
	query := `INSERT INTO contract_history (id, contract_id, workspace_id, event, description,
		old_values, new_values, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.ContractID, entry.WorkspaceID, entry.Event, entry.Description,
		entry.OldValues, entry.NewValues, entry.Actor, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contract history: %w", err)
	}
	return nil
}

// ListByContract fetches the audit trail for a contract, oldest first.
func (r *HistoryRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.ContractHistory, error) {
	query := `SELECT id, contract_id, workspace_id, event, description, old_values, new_values, actor, created_at
		FROM contract_history WHERE contract_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("list contract history: %w", err)
	}
	defer rows.Close()

	var entries []domain.ContractHistory
	for rows.Next() {
		e := domain.ContractHistory{}
		err := rows.Scan(
			&e.ID, &e.ContractID, &e.WorkspaceID, &e.Event, &e.Description,
			&e.OldValues, &e.NewValues, &e.Actor, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}
