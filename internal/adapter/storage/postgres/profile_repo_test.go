package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_ActiveWorkspaceByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)
	workspaceID := uuid.New()

	mock.ExpectQuery("SELECT active_workspace_id FROM profiles").
		WithArgs("advogado@firma.com").
		WillReturnRows(pgxmock.NewRows([]string{"active_workspace_id"}).AddRow(&workspaceID))

	got, err := repo.ActiveWorkspaceByEmail(context.Background(), "advogado@firma.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, workspaceID, *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepo_ActiveWorkspaceByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)

	mock.ExpectQuery("SELECT active_workspace_id FROM profiles").
		WithArgs("stranger@nowhere.com").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.ActiveWorkspaceByEmail(context.Background(), "stranger@nowhere.com")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepo_ActiveWorkspaceByEmail_EmptyEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)

	// No query at all for a blank email.
	got, err := repo.ActiveWorkspaceByEmail(context.Background(), "  ")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
