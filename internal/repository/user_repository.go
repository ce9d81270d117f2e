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

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// Create : сохраняет нового пользователя.
// При повторном входе с тем же google_id возвращает существующую запись
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, google_id, email, display_name)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (google_id) DO UPDATE SET email = EXCLUDED.email
	RETURNING uuid, google_id, email, display_name, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query, user.UUID, user.GoogleID, user.Email, user.DisplayName).
		StructScan(createdUser)
	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByID : ищет пользователя по UUID
func (r *UserRepository) FindByID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, google_id, email, display_name, created_at FROM users WHERE uuid = $1`
	return r.findOne(ctx, query, uuid)
}

// FindByExternalID : ищет пользователя по идентификатору Google
func (r *UserRepository) FindByExternalID(ctx context.Context, googleID string) (*model.User, error) {
	query := `SELECT uuid, google_id, email, display_name, created_at FROM users WHERE google_id = $1`
	return r.findOne(ctx, query, googleID)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*model.User, error) {
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}
