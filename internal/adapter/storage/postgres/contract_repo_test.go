package postgres

import (
	"context"
	"testing"
	"time"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestContract(workspaceID uuid.UUID) *domain.Contract {
	return &domain.Contract{
		ID:              uuid.New(),
		WorkspaceID:     workspaceID,
		ZapSignOpenID:   42,
		ZapSignToken:    "T1",
		Name:            "Contrato X",
		Status:          domain.ContractStatusSigned,
		OriginalFileURL: strPtr("https://files.example.com/original.pdf"),
		SignedFileURL:   strPtr("https://files.example.com/signed.pdf"),
		CreatedByEmail:  "owner@tenant.com",
		Metadata:        []byte(`{"origin":"crm"}`),
	}
}

func contractCols() []string {
	return []string{"id", "workspace_id", "zapsign_open_id", "zapsign_token", "name", "code", "contract_type",
		"contract_value", "status", "client_id", "matched_by", "matching_confidence", "original_file_url",
		"signed_file_url", "created_by_email", "metadata", "provider_created_at", "provider_updated_at",
		"signed_at", "is_deleted", "deleted_at", "created_at", "updated_at"}
}

func contractRow(c *domain.Contract) *pgxmock.Rows {
	now := time.Now().UTC()
	return pgxmock.NewRows(contractCols()).AddRow(
		c.ID, c.WorkspaceID, c.ZapSignOpenID, c.ZapSignToken, c.Name, c.Code, c.ContractType,
		c.ContractValue, c.Status, c.ClientID, c.MatchedBy, c.MatchingConfidence,
		c.OriginalFileURL, c.SignedFileURL, c.CreatedByEmail, c.Metadata,
		c.ProviderCreatedAt, c.ProviderUpdatedAt, c.SignedAt, c.IsDeleted, c.DeletedAt, now, now,
	)
}

func TestContractRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContractRepo(mock)
	c := newTestContract(uuid.New())

	mock.ExpectQuery("INSERT INTO contracts").
		WithArgs(
			c.ID, c.WorkspaceID, c.ZapSignOpenID, c.ZapSignToken, c.Name, c.Code,
			c.ContractType, c.ContractValue, c.Status, c.OriginalFileURL, c.SignedFileURL,
			c.CreatedByEmail, c.Metadata, c.ProviderCreatedAt, c.ProviderUpdatedAt, c.SignedAt,
			pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnRows(contractRow(c))

	stored, err := repo.Upsert(context.Background(), c)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, c.ID, stored.ID)
	assert.Equal(t, int64(42), stored.ZapSignOpenID)
	assert.Equal(t, domain.ContractStatusSigned, stored.Status)
	assert.Nil(t, stored.ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepo_Upsert_ReturnsExistingRowIdentity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContractRepo(mock)
	c := newTestContract(uuid.New())

	// On conflict the database keeps the original row id and any existing
	// client match; RETURNING surfaces both.
	existingID := uuid.New()
	existingClient := uuid.New()
	matched := domain.MatchSourceDocument
	conf := 0.95
	existing := *c
	existing.ID = existingID
	existing.ClientID = &existingClient
	existing.MatchedBy = &matched
	existing.MatchingConfidence = &conf

	mock.ExpectQuery("INSERT INTO contracts").
		WithArgs(
			c.ID, c.WorkspaceID, c.ZapSignOpenID, c.ZapSignToken, c.Name, c.Code,
			c.ContractType, c.ContractValue, c.Status, c.OriginalFileURL, c.SignedFileURL,
			c.CreatedByEmail, c.Metadata, c.ProviderCreatedAt, c.ProviderUpdatedAt, c.SignedAt,
			pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnRows(contractRow(&existing))

	stored, err := repo.Upsert(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, existingID, stored.ID)
	require.NotNil(t, stored.ClientID)
	assert.Equal(t, existingClient, *stored.ClientID)
	assert.Equal(t, domain.MatchSourceDocument, *stored.MatchedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepo_GetByOpenID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContractRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM contracts").
		WithArgs(pgxmock.AnyArg(), int64(999)).
		WillReturnRows(pgxmock.NewRows(contractCols()))

	c, err := repo.GetByOpenID(context.Background(), uuid.New(), 999)
	assert.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepo_SetClientMatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContractRepo(mock)
	contractID := uuid.New()
	match := &domain.ClientMatch{
		ClientID:   uuid.New(),
		Source:     domain.MatchSourceEmail,
		Confidence: 0.80,
	}

	mock.ExpectExec("UPDATE contracts SET client_id").
		WithArgs(match.ClientID, match.Source, match.Confidence, pgxmock.AnyArg(), contractID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SetClientMatch(context.Background(), contractID, match)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepo_SetClientMatch_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContractRepo(mock)

	mock.ExpectExec("UPDATE contracts SET client_id").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.SetClientMatch(context.Background(), uuid.New(), &domain.ClientMatch{
		ClientID: uuid.New(), Source: domain.MatchSourceManual, Confidence: 1,
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
