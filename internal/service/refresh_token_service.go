package service

import (
	"context"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/ports"
	"event-tracker-auth/internal/security"
	"event-tracker-auth/internal/util"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionPolicy : сроки жизни refresh токенов
type SessionPolicy struct {
	// SlidingWindow : продление при каждом успешном использовании
	SlidingWindow time.Duration
	// AbsoluteMax : жёсткий предел жизни сессии от момента выдачи
	AbsoluteMax time.Duration
	// ShortSession : начальный срок без "запомнить меня"
	ShortSession time.Duration
}

// RefreshTokenService управляет жизненным циклом refresh токенов:
// выдача, проверка со скользящим и абсолютным сроком, ротация и отзыв.
// Состояние хранится только в RefreshTokenStore
type RefreshTokenService struct {
	store  ports.RefreshTokenStore
	clock  util.Clock
	policy SessionPolicy
}

func NewRefreshTokenService(store ports.RefreshTokenStore, clock util.Clock, policy SessionPolicy) *RefreshTokenService {
	return &RefreshTokenService{
		store:  store,
		clock:  clock,
		policy: policy,
	}
}

// Issue выдаёт новый refresh токен пользователю.
//
// Параметры:
//   - ctx: контекст выполнения
//   - userID: UUID пользователя
//   - meta: User-Agent клиента и флаг "запомнить меня"
//
// Возвращает:
//   - секрет в открытом виде, он отдаётся клиенту один раз
//   - ошибку хранилища
func (s *RefreshTokenService) Issue(ctx context.Context, userID string, meta model.ClientMetadata) (string, error) {
	secret, err := security.GenerateSecret()
	if err != nil {
		return "", fmt.Errorf("[RefreshTokenService] %w", err)
	}

	now := s.clock.Now()
	initial := s.policy.ShortSession
	if meta.RememberMe {
		initial = s.policy.SlidingWindow
	}

	absoluteExpiresAt := now.Add(s.policy.AbsoluteMax)
	expiresAt := minTime(now.Add(initial), absoluteExpiresAt)

	var userAgent *string
	if meta.UserAgent != "" {
		ua := meta.UserAgent
		userAgent = &ua
	}

	token := &model.RefreshToken{
		ID:                uuid.New().String(),
		TokenHash:         security.HashSecret(secret),
		UserID:            userID,
		ExpiresAt:         expiresAt,
		AbsoluteExpiresAt: absoluteExpiresAt,
		IsActive:          true,
		UserAgent:         userAgent,
		CreatedAt:         now,
	}

	if err := s.store.Create(ctx, token); err != nil {
		return "", fmt.Errorf("[RefreshTokenService] не удалось сохранить refresh токен: %w", err)
	}

	util.Logger.Debugf("[RefreshTokenService] выдан токен %s пользователю %s", token.ID, userID)
	return secret, nil
}

// Validate проверяет предъявленный секрет.
// Отсутствие сессии это не ошибка: возвращается (nil, nil).
// Абсолютный срок проверяется раньше скользящего, продление не выходит за абсолютный срок
func (s *RefreshTokenService) Validate(ctx context.Context, secret string) (*model.TokenIdentity, error) {
	if secret == "" {
		return nil, nil
	}

	token, err := s.store.FindByHash(ctx, security.HashSecret(secret))
	if err != nil {
		return nil, fmt.Errorf("[RefreshTokenService] ошибка поиска refresh токена: %w", err)
	}
	if token == nil || !token.IsActive {
		return nil, nil
	}

	now := s.clock.Now()

	if token.AbsoluteExpiresAt.Before(now) {
		util.Logger.Debugf("[RefreshTokenService] токен %s превысил абсолютный срок", token.ID)
		return nil, s.expire(ctx, token.ID)
	}

	if token.ExpiresAt.Before(now) {
		util.Logger.Debugf("[RefreshTokenService] токен %s просрочен по неактивности", token.ID)
		return nil, s.expire(ctx, token.ID)
	}

	token.ExpiresAt = minTime(now.Add(s.policy.SlidingWindow), token.AbsoluteExpiresAt)
	token.LastUsedAt = &now

	updated, err := s.store.Update(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("[RefreshTokenService] не удалось продлить refresh токен: %w", err)
	}
	if !updated {
		return nil, nil
	}

	return &model.TokenIdentity{
		UserID:  token.UserID,
		TokenID: token.ID,
	}, nil
}

// Rotate заменяет токен новым для того же пользователя.
// Если старой записи уже нет, возвращает model.ErrTokenNotFound:
// из конкурентных вызовов с одним id успешен ровно один
func (s *RefreshTokenService) Rotate(ctx context.Context, oldTokenID string, meta model.ClientMetadata) (string, error) {
	token, err := s.store.FindByID(ctx, oldTokenID)
	if err != nil {
		return "", fmt.Errorf("[RefreshTokenService] ошибка поиска refresh токена: %w", err)
	}
	if token == nil {
		return "", model.ErrTokenNotFound
	}

	deleted, err := s.store.Delete(ctx, token.ID)
	if err != nil {
		return "", fmt.Errorf("[RefreshTokenService] не удалось удалить refresh токен: %w", err)
	}
	if !deleted {
		util.Logger.Warnf("[RefreshTokenService] токен %s уже был использован для ротации", token.ID)
		return "", model.ErrTokenNotFound
	}

	return s.Issue(ctx, token.UserID, meta)
}

// RevokeOne удаляет токен по секрету, отсутствие токена не ошибка
func (s *RefreshTokenService) RevokeOne(ctx context.Context, secret string) error {
	if secret == "" {
		return nil
	}

	if err := s.store.DeleteByHash(ctx, security.HashSecret(secret)); err != nil {
		return fmt.Errorf("[RefreshTokenService] не удалось отозвать refresh токен: %w", err)
	}

	return nil
}

// RevokeAllForUser удаляет все токены пользователя одной операцией
func (s *RefreshTokenService) RevokeAllForUser(ctx context.Context, userID string) error {
	removed, err := s.store.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("[RefreshTokenService] не удалось отозвать токены пользователя: %w", err)
	}

	util.Logger.Infof("[RefreshTokenService] отозвано %d токенов пользователя %s", removed, userID)
	return nil
}

func (s *RefreshTokenService) expire(ctx context.Context, id string) error {
	if _, err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("[RefreshTokenService] не удалось удалить просроченный refresh токен: %w", err)
	}
	return nil
}

func minTime(a, b time.Time) time.Time {
	if a.After(b) {
		return b
	}
	return a
}
