package ports

import (
	"context"
	"event-tracker-auth/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, idToken string, meta model.ClientMetadata) (*model.TokensPair, error)
	Refresh(ctx context.Context, refreshToken string, meta model.ClientMetadata) (*model.TokensPair, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutEverywhere(ctx context.Context, userID string) error
}

// IdentityVerifier : проверка ID-токена внешнего провайдера.
// Любая ошибка проверки возвращается как nil
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) *model.GoogleIdentity
}
