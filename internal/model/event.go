package model

import "time"

type Event struct {
	ID          string    `db:"id" json:"id"`
	OwnerID     string    `db:"owner_id" json:"owner_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	StartsAt    time.Time `db:"starts_at" json:"starts_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ResourceType : тип ресурса для проверки владельца
type ResourceType string

const (
	ResourceEvent ResourceType = "event"
)

// EventPage : первая страница списка событий владельца в кэше
type EventPage struct {
	Events     []*Event `json:"events"`
	NextCursor string   `json:"next_cursor"`
}
