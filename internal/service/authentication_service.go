package service

import (
	"context"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/ports"
	"event-tracker-auth/internal/util"
	"fmt"

	"github.com/google/uuid"
)

type AuthenticationService struct {
	identityVerifier ports.IdentityVerifier
	userRepository   ports.UserRepository
	refreshTokens    ports.RefreshTokenManager
	accessTokens     ports.AccessTokenIssuer
}

func NewAuthenticationService(
	verifier ports.IdentityVerifier,
	userRepository ports.UserRepository,
	refreshTokens ports.RefreshTokenManager,
	accessTokens ports.AccessTokenIssuer,
) *AuthenticationService {
	return &AuthenticationService{
		identityVerifier: verifier,
		userRepository:   userRepository,
		refreshTokens:    refreshTokens,
		accessTokens:     accessTokens,
	}
}

// Login выполняет вход через Google.
// Проверяет ID-токен, находит или создаёт пользователя и выдаёт пару токенов.
//
// Параметры:
//   - ctx: контекст выполнения (для отмены и таймаутов)
//   - idToken: Google ID-токен из клиента
//   - meta: User-Agent и флаг "запомнить меня"
//
// Пример:
//
//	tokensPair, err := handler.AuthenticationService.Login(
//		request.Context(),
//		"eyJhbGciOiJSUzI1NiIsImtpZCI6...",
//		model.ClientMetadata{UserAgent: "PostmanRuntime/7.44.1", RememberMe: true},
//	 )
//
// Возвращает:
//   - model.TokensPair
//   - model.ErrInvalidIdentity, если Google не подтвердил токен
func (s *AuthenticationService) Login(ctx context.Context, idToken string, meta model.ClientMetadata) (*model.TokensPair, error) {
	identity := s.identityVerifier.Verify(ctx, idToken)
	if identity == nil {
		return nil, model.ErrInvalidIdentity
	}

	user, err := s.userRepository.FindByExternalID(ctx, identity.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка поиска пользователя: %w", err)
	}

	if user == nil {
		user, err = s.userRepository.Create(ctx, &model.User{
			UUID:        uuid.New().String(),
			GoogleID:    identity.SubjectID,
			Email:       identity.Email,
			DisplayName: identity.DisplayName,
		})
		if err != nil {
			return nil, fmt.Errorf("[AuthenticationService] ошибка создания пользователя: %w", err)
		}
		util.Logger.Infof("[AuthenticationService] зарегистрирован пользователь %s", user.UUID)
	}

	refreshToken, err := s.refreshTokens.Issue(ctx, user.UUID, meta)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка выдачи refresh токена: %w", err)
	}

	accessToken, err := s.accessTokens.Issue(user.UUID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка генерации access токена: %w", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RememberMe:   meta.RememberMe,
	}, nil
}

// Refresh обменивает refresh токен на новую пару токенов.
// Старый refresh токен после этого недействителен.
//
// Возвращает:
//   - model.ErrSessionEnded, если токен отсутствует или просрочен
//   - model.ErrTokenNotFound, если токен успели использовать параллельно
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string, meta model.ClientMetadata) (*model.TokensPair, error) {
	identity, err := s.refreshTokens.Validate(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка проверки refresh токена: %w", err)
	}
	if identity == nil {
		return nil, model.ErrSessionEnded
	}

	user, err := s.userRepository.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		util.Logger.Warnf("[AuthenticationService] пользователь %s не найден, сессии отзываются", identity.UserID)
		if err := s.refreshTokens.RevokeAllForUser(ctx, identity.UserID); err != nil {
			return nil, fmt.Errorf("[AuthenticationService] %w", err)
		}
		return nil, model.ErrSessionEnded
	}

	newRefreshToken, err := s.refreshTokens.Rotate(ctx, identity.TokenID, meta)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка ротации refresh токена: %w", err)
	}

	accessToken, err := s.accessTokens.Issue(user.UUID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка генерации access токена: %w", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		RememberMe:   meta.RememberMe,
	}, nil
}

// Logout отзывает предъявленный refresh токен, отсутствующий токен не ошибка
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.refreshTokens.RevokeOne(ctx, refreshToken); err != nil {
		return fmt.Errorf("[AuthenticationService] %w", err)
	}
	return nil
}

// LogoutEverywhere завершает все сессии пользователя
func (s *AuthenticationService) LogoutEverywhere(ctx context.Context, userID string) error {
	if err := s.refreshTokens.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("[AuthenticationService] %w", err)
	}
	return nil
}
