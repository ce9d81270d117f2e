package ports

import (
	"context"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/security"
)

// RefreshTokenStore : хранилище записей refresh-токенов.
// Find* возвращают (nil, nil), если записи нет
type RefreshTokenStore interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	FindByID(ctx context.Context, id string) (*model.RefreshToken, error)
	Update(ctx context.Context, token *model.RefreshToken) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByHash(ctx context.Context, tokenHash string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// RefreshTokenManager : жизненный цикл refresh-токенов
type RefreshTokenManager interface {
	Issue(ctx context.Context, userID string, meta model.ClientMetadata) (string, error)
	Validate(ctx context.Context, secret string) (*model.TokenIdentity, error)
	Rotate(ctx context.Context, oldTokenID string, meta model.ClientMetadata) (string, error)
	RevokeOne(ctx context.Context, secret string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

type AccessTokenIssuer interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (*security.Claims, bool)
}
