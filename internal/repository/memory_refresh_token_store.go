package repository

import (
	"context"
	"event-tracker-auth/internal/model"
	"sync"
)

// MemoryRefreshTokenStore : хранилище в памяти процесса для локального запуска и тестов
type MemoryRefreshTokenStore struct {
	mu     sync.Mutex
	byID   map[string]model.RefreshToken
	byHash map[string]string
}

func NewMemoryRefreshTokenStore() *MemoryRefreshTokenStore {
	return &MemoryRefreshTokenStore{
		byID:   make(map[string]model.RefreshToken),
		byHash: make(map[string]string),
	}
}

func (s *MemoryRefreshTokenStore) Create(ctx context.Context, token *model.RefreshToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[token.ID] = cloneToken(*token)
	s.byHash[token.TokenHash] = token.ID
	return nil
}

func (s *MemoryRefreshTokenStore) FindByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byHash[tokenHash]
	if !ok {
		return nil, nil
	}
	return s.lookup(id), nil
}

func (s *MemoryRefreshTokenStore) FindByID(ctx context.Context, id string) (*model.RefreshToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lookup(id), nil
}

func (s *MemoryRefreshTokenStore) Update(ctx context.Context, token *model.RefreshToken) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[token.ID]
	if !ok {
		return false, nil
	}

	updated := cloneToken(*token)
	stored.ExpiresAt = updated.ExpiresAt
	stored.LastUsedAt = updated.LastUsedAt
	s.byID[token.ID] = stored
	return true, nil
}

func (s *MemoryRefreshTokenStore) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(id), nil
}

func (s *MemoryRefreshTokenStore) DeleteByHash(ctx context.Context, tokenHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byHash[tokenHash]; ok {
		s.remove(id)
	}
	return nil
}

func (s *MemoryRefreshTokenStore) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, token := range s.byID {
		if token.UserID == userID && s.remove(id) {
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryRefreshTokenStore) lookup(id string) *model.RefreshToken {
	token, ok := s.byID[id]
	if !ok {
		return nil
	}
	found := cloneToken(token)
	return &found
}

func (s *MemoryRefreshTokenStore) remove(id string) bool {
	token, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	delete(s.byHash, token.TokenHash)
	return true
}

func cloneToken(token model.RefreshToken) model.RefreshToken {
	if token.UserAgent != nil {
		userAgent := *token.UserAgent
		token.UserAgent = &userAgent
	}
	if token.LastUsedAt != nil {
		lastUsed := *token.LastUsedAt
		token.LastUsedAt = &lastUsed
	}
	return token
}
