package ports

import (
	"context"
	"event-tracker-auth/internal/model"
)

// EventRepository : SQL слой
type EventRepository interface {
	OwnerLookup
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	ListByOwner(ctx context.Context, ownerID string, cursor string, limit int) ([]*model.Event, string, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, ownerID string, event *model.Event) (*model.Event, error)
	GetEvent(ctx context.Context, userID, eventID string) (*model.Event, error)
	ListEvents(ctx context.Context, userID, cursor string, limit int) ([]*model.Event, string, error)
	DeleteEvent(ctx context.Context, userID, eventID string) error
}

// OwnerLookup : возвращает владельца ресурса или "", если ресурса нет
type OwnerLookup interface {
	FindOwner(ctx context.Context, id string) (string, error)
}

type Authorizer interface {
	Authorize(ctx context.Context, userID string, resourceType model.ResourceType, resourceID string) error
}
