package service

import (
	"context"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/ports"
	"event-tracker-auth/internal/util"
	"fmt"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type EventService struct {
	eventRepository ports.EventRepository
	eventCache      ports.EventCache
	authorizer      ports.Authorizer
}

func NewEventService(
	eventRepository ports.EventRepository,
	eventCache ports.EventCache,
	authorizer ports.Authorizer,
) *EventService {
	return &EventService{
		eventRepository: eventRepository,
		eventCache:      eventCache,
		authorizer:      authorizer,
	}
}

// CreateEvent : создаёт событие, сбрасывает кэш страниц владельца и кладёт событие в кэш
func (s *EventService) CreateEvent(ctx context.Context, ownerID string, event *model.Event) (*model.Event, error) {
	event.ID = uuid.New().String()
	event.OwnerID = ownerID

	if err := s.eventRepository.Create(ctx, event); err != nil {
		return nil, util.LogError("[EventService] не удалось сохранить событие в БД", err)
	}

	if err := s.eventCache.Invalidate(ctx, ownerID); err != nil {
		util.Logger.Warnf("[EventService] не удалось сбросить кэш списка владельца %s: %v", ownerID, err)
	}
	if err := s.eventCache.SetEvent(ctx, event); err != nil {
		util.Logger.Warnf("[EventService] не удалось закэшировать событие %s: %v", event.ID, err)
	}

	util.Logger.Infof("[EventService] событие %s успешно создано", event.ID)
	return event, nil
}

// GetEvent : сначала проверяет владельца, затем читает из кэша или БД
func (s *EventService) GetEvent(ctx context.Context, userID, eventID string) (*model.Event, error) {
	if err := s.authorizer.Authorize(ctx, userID, model.ResourceEvent, eventID); err != nil {
		return nil, err
	}

	event, err := s.eventCache.GetEvent(ctx, eventID)
	if err != nil {
		util.Logger.Warnf("[EventService] ошибка чтения кэша: %v", err)
	}
	if event != nil {
		return event, nil
	}

	event, err = s.eventRepository.GetByID(ctx, eventID)
	if err != nil {
		return nil, util.LogError("[EventService] не удалось получить событие", err)
	}
	if event == nil {
		return nil, model.ErrResourceNotFound
	}

	if err := s.eventCache.SetEvent(ctx, event); err != nil {
		util.Logger.Warnf("[EventService] не удалось закэшировать событие %s: %v", event.ID, err)
	}

	return event, nil
}

// ListEvents : события пользователя, limit ограничен сверху.
// Первая страница читается из кэша
func (s *EventService) ListEvents(ctx context.Context, userID, cursor string, limit int) ([]*model.Event, string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if cursor == "" {
		page, err := s.eventCache.GetFirstPage(ctx, userID, limit)
		if err != nil {
			util.Logger.Warnf("[EventService] ошибка чтения кэша списка: %v", err)
		}
		if page != nil {
			return page.Events, page.NextCursor, nil
		}
	}

	events, nextCursor, err := s.eventRepository.ListByOwner(ctx, userID, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("[EventService] %w", err)
	}

	if cursor == "" {
		page := &model.EventPage{Events: events, NextCursor: nextCursor}
		if err := s.eventCache.SetFirstPage(ctx, userID, limit, page); err != nil {
			util.Logger.Warnf("[EventService] не удалось закэшировать список владельца %s: %v", userID, err)
		}
	}

	return events, nextCursor, nil
}

// DeleteEvent : удаляет событие владельца и вычищает его вместе со страницами владельца из кэша
func (s *EventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	if err := s.authorizer.Authorize(ctx, userID, model.ResourceEvent, eventID); err != nil {
		return err
	}

	deleted, err := s.eventRepository.Delete(ctx, eventID)
	if err != nil {
		return util.LogError("[EventService] не удалось удалить событие", err)
	}
	if !deleted {
		return model.ErrResourceNotFound
	}

	if err := s.eventCache.Invalidate(ctx, userID, eventID); err != nil {
		util.Logger.Warnf("[EventService] не удалось удалить событие %s из кэша: %v", eventID, err)
	}

	return nil
}
