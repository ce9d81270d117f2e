package requestresponse

import (
	"event-tracker-auth/internal/model"
	"time"
)

// CreateEventRequest : тело запроса на создание события
type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=200" example:"Стоматолог"`
	Description string    `json:"description" validate:"max=2000" example:"Плановый осмотр"`
	StartsAt    time.Time `json:"starts_at" validate:"required" example:"2025-09-01T10:00:00Z"`
}

// EventResponse : событие в JSON-ответе
type EventResponse struct {
	ID          string `json:"id" example:"0d6f2c9a-5a3e-4c55-9a8a-3a0e7f1b2c3d"`
	Title       string `json:"title" example:"Стоматолог"`
	Description string `json:"description" example:"Плановый осмотр"`
	StartsAt    string `json:"starts_at" example:"2025-09-01T10:00:00Z"`
	CreatedAt   string `json:"created_at" example:"2025-08-23T12:34:56Z"`
}

// EventResponseFromModel : конвертирует model.Event в EventResponse
func EventResponseFromModel(event *model.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		StartsAt:    event.StartsAt.Format(time.RFC3339),
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
	}
}

// GetEventResponse : ответ с одним событием
type GetEventResponse struct {
	Data EventResponse `json:"data"`
}

// ListEventsResponse : ответ API со списком событий
type ListEventsResponse struct {
	Data struct {
		Events []EventResponse `json:"events"`
	} `json:"data"`
	NextCursor string `json:"next_cursor,omitempty" example:"2025-08-23T12:34:56.123456789Z"`
	Count      int    `json:"count" example:"10"`
}

// DeleteEventResponse : ответ на удаление события
type DeleteEventResponse struct {
	Response map[string]bool `json:"response"`
}
