package repository

import (
	"context"
	"database/sql"
	"errors"
	"event-tracker-auth/config"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/util"

	"github.com/jmoiron/sqlx"
)

const refreshTokenColumns = `id, token_hash, user_id, expires_at, absolute_expires_at, is_active, user_agent, last_used_at, created_at`

// RefreshTokenRepository : Postgres хранилище refresh токенов
type RefreshTokenRepository struct {
	*config.Database
}

func NewRefreshTokenRepository(database *config.Database) *RefreshTokenRepository {
	return &RefreshTokenRepository{database}
}

// Create сохраняет refresh-токен в базе данных
func (r *RefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, token_hash, user_id, expires_at, absolute_expires_at, is_active, user_agent, last_used_at, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		token.ID,
		token.TokenHash,
		token.UserID,
		token.ExpiresAt,
		token.AbsoluteExpiresAt,
		token.IsActive,
		token.UserAgent,
		token.LastUsedAt,
		token.CreatedAt,
	)
	if err != nil {
		return util.LogError("[RefreshTokenRepo] ошибка вставки данных в БД", err)
	}

	return nil
}

// FindByHash ищет токен по хэшу секрета, (nil, nil) если не найден
func (r *RefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE token_hash = $1`
	return r.findOne(ctx, query, tokenHash)
}

// FindByID ищет токен по идентификатору, (nil, nil) если не найден
func (r *RefreshTokenRepository) FindByID(ctx context.Context, id string) (*model.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *RefreshTokenRepository) findOne(ctx context.Context, query string, arg string) (*model.RefreshToken, error) {
	var token model.RefreshToken
	err := sqlx.GetContext(ctx, r.DB, &token, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("[RefreshTokenRepo] ошибка при выполнении запроса", err)
	}

	return &token, nil
}

// Update сохраняет продлённый срок и время последнего использования.
// Возвращает false, если строки уже нет
func (r *RefreshTokenRepository) Update(ctx context.Context, token *model.RefreshToken) (bool, error) {
	query := `UPDATE refresh_tokens SET expires_at = $2, last_used_at = $3 WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, token.ID, token.ExpiresAt, token.LastUsedAt)
	if err != nil {
		return false, util.LogError("[RefreshTokenRepo] не удалось обновить рефреш токен", err)
	}

	return affected(result)
}

// Delete удаляет токен по id. Только один из конкурентных вызовов получает true
func (r *RefreshTokenRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM refresh_tokens WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, util.LogError("[RefreshTokenRepo] не удалось удалить рефреш токен", err)
	}

	return affected(result)
}

func (r *RefreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	query := `DELETE FROM refresh_tokens WHERE token_hash = $1`

	if _, err := r.DB.ExecContext(ctx, query, tokenHash); err != nil {
		return util.LogError("[RefreshTokenRepo] не удалось удалить рефреш токен по хэшу", err)
	}

	return nil
}

// DeleteByUser удаляет все токены пользователя одним запросом
func (r *RefreshTokenRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE user_id = $1`

	result, err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, util.LogError("[RefreshTokenRepo] не удалось удалить рефреш токены пользователя", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[RefreshTokenRepo] не удалось проверить количество удалённых токенов", err)
	}

	return rowsAffected, nil
}

func affected(result sql.Result) (bool, error) {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[Repository] не удалось проверить, изменена ли строка", err)
	}

	return rowsAffected > 0, nil
}
