package ports

import (
	"context"
	"event-tracker-auth/internal/model"
)

// EventCache : Redis слой. Первая страница списка владельца
// сбрасывается при любом изменении его событий
type EventCache interface {
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	SetEvent(ctx context.Context, event *model.Event) error
	GetFirstPage(ctx context.Context, ownerID string, limit int) (*model.EventPage, error)
	SetFirstPage(ctx context.Context, ownerID string, limit int, page *model.EventPage) error
	Invalidate(ctx context.Context, ownerID string, eventIDs ...string) error
}
