package repository

import (
	"context"
	"database/sql"
	"errors"
	"event-tracker-auth/config"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/util"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const cursorSeparator = "|"

type EventRepository struct {
	*config.Database
}

func NewEventRepository(database *config.Database) *EventRepository {
	return &EventRepository{database}
}

// Create : сохраняет событие, created_at проставляет БД
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `
	INSERT INTO events (id, owner_id, title, description, starts_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at
	`

	err := r.DB.QueryRowxContext(ctx, query, event.ID, event.OwnerID, event.Title, event.Description, event.StartsAt).
		Scan(&event.CreatedAt)
	if err != nil {
		return util.LogError("[EventRepo] ошибка вставки данных в БД", err)
	}

	return nil
}

// GetByID : (nil, nil), если события нет
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT id, owner_id, title, description, starts_at, created_at FROM events WHERE id = $1`

	var event model.Event
	err := sqlx.GetContext(ctx, r.DB, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("[EventRepo] не удалось получить событие", err)
	}

	return &event, nil
}

// FindOwner : владелец события или "", если события нет
func (r *EventRepository) FindOwner(ctx context.Context, id string) (string, error) {
	query := `SELECT owner_id FROM events WHERE id = $1`

	var ownerID string
	err := sqlx.GetContext(ctx, r.DB, &ownerID, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", util.LogError("[EventRepo] не удалось получить владельца события", err)
	}

	return ownerID, nil
}

// ListByOwner : события пользователя, keyset-пагинация по (created_at, id)
func (r *EventRepository) ListByOwner(ctx context.Context, ownerID string, cursor string, limit int) ([]*model.Event, string, error) {
	query := `
        SELECT id, owner_id, title, description, starts_at, created_at
        FROM events
        WHERE owner_id = $1 AND (created_at, id) > ($2, $3)
        ORDER BY created_at ASC, id ASC
        LIMIT $4
    `

	afterTime, afterID, err := decodeEventCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	var events []*model.Event
	err = sqlx.SelectContext(ctx, r.DB, &events, query, ownerID, afterTime, afterID, limit+1) // +1 для проверки наличия следующей страницы
	if err != nil {
		return nil, "", util.LogError("[EventRepo] не удалось получить список событий", err)
	}

	var nextCursor string
	if len(events) > limit {
		events = events[:limit]
		last := events[len(events)-1]
		nextCursor = encodeEventCursor(last.CreatedAt, last.ID)
	}

	return events, nextCursor, nil
}

// encodeEventCursor : "<created_at RFC3339Nano>|<id>"
func encodeEventCursor(createdAt time.Time, id string) string {
	return createdAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + id
}

// decodeEventCursor : пустой курсор означает начало списка
func decodeEventCursor(cursor string) (time.Time, string, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil.String(), nil
	}

	rawTime, rawID, ok := strings.Cut(cursor, cursorSeparator)
	if !ok {
		return time.Time{}, "", fmt.Errorf("[EventRepo] курсор %q без разделителя: %w", cursor, model.ErrInvalidCursor)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, rawTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("[EventRepo] некорректное время в курсоре: %w", model.ErrInvalidCursor)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("[EventRepo] некорректный id в курсоре: %w", model.ErrInvalidCursor)
	}

	return createdAt, id.String(), nil
}

// Delete : false, если удалять было нечего
func (r *EventRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, util.LogError("[EventRepo] не удалось удалить событие", err)
	}

	return affected(result)
}
