package postgres

import (
	"context"
	"testing"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRepo_FindByDocument(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClientRepo(mock)
	workspaceID := uuid.New()
	clientID := uuid.New()

	mock.ExpectQuery("SELECT id FROM clients").
		WithArgs(workspaceID, "12345678901").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(clientID))

	// Formatting characters are stripped before the lookup.
	match, err := repo.FindByDocument(context.Background(), workspaceID, "123.456.789-01")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, clientID, match.ClientID)
	assert.Equal(t, domain.MatchSourceDocument, match.Source)
	assert.InDelta(t, 0.95, match.Confidence, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_FindByDocument_EmptyDocument(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClientRepo(mock)

	// No digits means no query at all.
	match, err := repo.FindByDocument(context.Background(), uuid.New(), "--")
	assert.NoError(t, err)
	assert.Nil(t, match)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_FindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClientRepo(mock)
	workspaceID := uuid.New()
	clientID := uuid.New()

	mock.ExpectQuery("SELECT id FROM clients").
		WithArgs(workspaceID, "ana@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(clientID))

	match, err := repo.FindByEmail(context.Background(), workspaceID, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, domain.MatchSourceEmail, match.Source)
	assert.InDelta(t, 0.80, match.Confidence, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_FindByEmail_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClientRepo(mock)

	mock.ExpectQuery("SELECT id FROM clients").
		WithArgs(pgxmock.AnyArg(), "nobody@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	match, err := repo.FindByEmail(context.Background(), uuid.New(), "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, match)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_FindByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClientRepo(mock)
	workspaceID := uuid.New()
	clientID := uuid.New()

	mock.ExpectQuery("SELECT id, similarity").
		WithArgs(workspaceID, "Ana Souza", nameSimilarityFloor).
		WillReturnRows(pgxmock.NewRows([]string{"id", "sim"}).AddRow(clientID, 0.80))

	match, err := repo.FindByName(context.Background(), workspaceID, "Ana Souza")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, domain.MatchSourceName, match.Source)
	// 0.30 + 0.30*0.80 = 0.54: always below the email tier.
	assert.InDelta(t, 0.54, match.Confidence, 1e-9)
	assert.Less(t, match.Confidence, confidenceEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_FindByName_BelowFloor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClientRepo(mock)

	mock.ExpectQuery("SELECT id, similarity").
		WithArgs(pgxmock.AnyArg(), "Zed", nameSimilarityFloor).
		WillReturnRows(pgxmock.NewRows([]string{"id", "sim"}))

	match, err := repo.FindByName(context.Background(), uuid.New(), "Zed")
	assert.NoError(t, err)
	assert.Nil(t, match)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345678901", digitsOnly("123.456.789-01"))
	assert.Equal(t, "", digitsOnly("abc-"))
	assert.Equal(t, "12345678000190", digitsOnly("12.345.678/0001-90"))
}
