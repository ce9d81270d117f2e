package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"event-tracker-auth/config"
	"event-tracker-auth/internal/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &config.Database{DB: sqlx.NewDb(db, "postgres")}, mock
}

var refreshColumns = []string{"id", "token_hash", "user_id", "expires_at", "absolute_expires_at", "is_active", "user_agent", "last_used_at", "created_at"}

func TestRefreshTokenRepository_Create(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewRefreshTokenRepository(database)
	token := sampleToken("id-1", "hash-1", "user-1")

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(token.ID, token.TokenHash, token.UserID, token.ExpiresAt, token.AbsoluteExpiresAt, true, token.UserAgent, token.LastUsedAt, token.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), token))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_CreateError(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewRefreshTokenRepository(database)

	mock.ExpectExec(`INSERT INTO refresh_tokens`).WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), sampleToken("id-1", "hash-1", "user-1"))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_FindByHash(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewRefreshTokenRepository(database)
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM refresh_tokens WHERE token_hash = \$1`).
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows(refreshColumns).
			AddRow("id-1", "hash-1", "user-1", now.Add(time.Hour), now.Add(24*time.Hour), true, nil, nil, now))

	token, err := repo.FindByHash(context.Background(), "hash-1")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "id-1", token.ID)
	assert.Equal(t, "user-1", token.UserID)
	assert.Nil(t, token.UserAgent)
	assert.Nil(t, token.LastUsedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_FindByIDNotFound(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewRefreshTokenRepository(database)

	mock.ExpectQuery(`SELECT .+ FROM refresh_tokens WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	token, err := repo.FindByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_FindByIDError(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewRefreshTokenRepository(database)

	mock.ExpectQuery(`SELECT .+ FROM refresh_tokens WHERE id = \$1`).
		WillReturnError(errors.New("timeout"))

	token, err := repo.FindByID(context.Background(), "id-1")
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestRefreshTokenRepository_Update(t *testing.T) {
	tests := []struct {
		name     string
		rows     int64
		expected bool
	}{
		{"row updated", 1, true},
		{"row vanished", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := newMockDatabase(t)
			repo := repository.NewRefreshTokenRepository(database)
			token := sampleToken("id-1", "hash-1", "user-1")

			mock.ExpectExec(`UPDATE refresh_tokens SET expires_at = \$2, last_used_at = \$3 WHERE id = \$1`).
				WithArgs(token.ID, token.ExpiresAt, token.LastUsedAt).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			updated, err := repo.Update(context.Background(), token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, updated)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRefreshTokenRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		rows     int64
		expected bool
	}{
		{"deleted", 1, true},
		{"already gone", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := newMockDatabase(t)
			repo := repository.NewRefreshTokenRepository(database)

			mock.ExpectExec(`DELETE FROM refresh_tokens WHERE id = \$1`).
				WithArgs("id-1").
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			deleted, err := repo.Delete(context.Background(), "id-1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRefreshTokenRepository_DeleteByHash(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewRefreshTokenRepository(database)

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token_hash = \$1`).
		WithArgs("hash-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteByHash(context.Background(), "hash-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_DeleteByUser(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewRefreshTokenRepository(database)

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
