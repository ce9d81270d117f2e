package service

import (
	"context"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/ports"
	"fmt"
)

// AuthorizationService : проверка, что ресурс принадлежит пользователю
type AuthorizationService struct {
	owners map[model.ResourceType]ports.OwnerLookup
}

func NewAuthorizationService(owners map[model.ResourceType]ports.OwnerLookup) *AuthorizationService {
	return &AuthorizationService{owners: owners}
}

// Authorize возвращает nil, model.ErrForbidden или model.ErrResourceNotFound
func (s *AuthorizationService) Authorize(ctx context.Context, userID string, resourceType model.ResourceType, resourceID string) error {
	if userID == "" {
		return model.ErrForbidden
	}

	lookup, ok := s.owners[resourceType]
	if !ok {
		return fmt.Errorf("[AuthorizationService] неизвестный тип ресурса %q: %w", resourceType, model.ErrForbidden)
	}

	ownerID, err := lookup.FindOwner(ctx, resourceID)
	if err != nil {
		return fmt.Errorf("[AuthorizationService] ошибка поиска владельца: %w", err)
	}
	if ownerID == "" {
		return model.ErrResourceNotFound
	}
	if ownerID != userID {
		return model.ErrForbidden
	}

	return nil
}
