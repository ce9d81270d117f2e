package repository

import (
	"context"
	"encoding/json"
	"errors"
	"event-tracker-auth/config"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/util"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	eventKeyPrefix      = "event:"
	ownerPagesKeyPrefix = "events:owner:"
)

// EventCacheRepository : событие по id и первые страницы списка владельца.
// Страницы владельца лежат в одном hash (поле = limit), чтобы сбрасываться одним DEL
type EventCacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewEventCacheRepository(rdb *config.RedisClient, ttl time.Duration) *EventCacheRepository {
	return &EventCacheRepository{rdb, ttl}
}

func (r *EventCacheRepository) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	val, err := r.client.Client.Get(ctx, eventKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[EventCache] ошибка получения события из Redis", err)
	}

	var event model.Event
	if err := json.Unmarshal(val, &event); err != nil {
		return nil, util.LogError("[EventCache] ошибка десериализации события", err)
	}
	return &event, nil
}

func (r *EventCacheRepository) SetEvent(ctx context.Context, event *model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return util.LogError("[EventCache] ошибка сериализации события", err)
	}

	if err := r.client.Client.Set(ctx, eventKeyPrefix+event.ID, data, r.ttl).Err(); err != nil {
		return util.LogError("[EventCache] ошибка сохранения события в Redis", err)
	}
	return nil
}

// GetFirstPage : (nil, nil), если страницы нет в кэше
func (r *EventCacheRepository) GetFirstPage(ctx context.Context, ownerID string, limit int) (*model.EventPage, error) {
	val, err := r.client.Client.HGet(ctx, ownerPagesKeyPrefix+ownerID, strconv.Itoa(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[EventCache] ошибка получения страницы событий", err)
	}

	var page model.EventPage
	if err := json.Unmarshal(val, &page); err != nil {
		return nil, util.LogError("[EventCache] ошибка десериализации страницы событий", err)
	}
	return &page, nil
}

// SetFirstPage : TTL hash обновляется каждой записью
func (r *EventCacheRepository) SetFirstPage(ctx context.Context, ownerID string, limit int, page *model.EventPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return util.LogError("[EventCache] ошибка сериализации страницы событий", err)
	}

	key := ownerPagesKeyPrefix + ownerID
	_, err = r.client.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, strconv.Itoa(limit), data)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		return util.LogError("[EventCache] ошибка сохранения страницы событий", err)
	}
	return nil
}

// Invalidate : сбрасывает страницы владельца и перечисленные события одной транзакцией
func (r *EventCacheRepository) Invalidate(ctx context.Context, ownerID string, eventIDs ...string) error {
	keys := make([]string, 0, len(eventIDs)+1)
	keys = append(keys, ownerPagesKeyPrefix+ownerID)
	for _, id := range eventIDs {
		keys = append(keys, eventKeyPrefix+id)
	}

	_, err := r.client.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		return nil
	})
	if err != nil {
		return util.LogError("[EventCache] ошибка сброса кэша событий", err)
	}
	return nil
}
