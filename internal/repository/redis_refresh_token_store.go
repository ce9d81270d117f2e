package repository

import (
	"context"
	"encoding/json"
	"errors"
	"event-tracker-auth/config"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/util"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	refreshIDPrefix   = "refresh:id:"
	refreshHashPrefix = "refresh:hash:"
	refreshUserPrefix = "refresh:user:"
)

// KEYS: запись, индекс по хэшу, множество хэшей пользователя. ARGV: хэш.
// DEL записи атомарен, поэтому 1 получает ровно один вызывающий
var deleteRefreshTokenScript = redis.NewScript(`
if redis.call('DEL', KEYS[1]) == 1 then
	redis.call('DEL', KEYS[2])
	redis.call('SREM', KEYS[3], ARGV[1])
	return 1
end
return 0
`)

// KEYS: множество хэшей пользователя. ARGV: префикс записи, префикс индекса по хэшу.
// Ключи записей и индексов собираются внутри скрипта и не объявлены в KEYS,
// поэтому хранилище работает только с одиночным Redis или Sentinel, не с Redis Cluster
var deleteUserRefreshTokensScript = redis.NewScript(`
local hashes = redis.call('SMEMBERS', KEYS[1])
local removed = 0
for _, h in ipairs(hashes) do
	local id = redis.call('GET', ARGV[2] .. h)
	if id then
		removed = removed + redis.call('DEL', ARGV[1] .. id)
	end
	redis.call('DEL', ARGV[2] .. h)
end
redis.call('DEL', KEYS[1])
return removed
`)

// RedisRefreshTokenStore : хранилище refresh токенов в Redis без Cluster.
// Каждый ключ живёт не дольше абсолютного срока сессии
type RedisRefreshTokenStore struct {
	client *config.RedisClient
	gcTTL  time.Duration
}

func NewRedisRefreshTokenStore(rdb *config.RedisClient, gcTTL time.Duration) *RedisRefreshTokenStore {
	return &RedisRefreshTokenStore{rdb, gcTTL}
}

func (s *RedisRefreshTokenStore) Create(ctx context.Context, token *model.RefreshToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return util.LogError("[RedisTokenStore] ошибка сериализации токена", err)
	}

	userKey := refreshUserPrefix + token.UserID
	_, err = s.client.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, refreshIDPrefix+token.ID, data, s.gcTTL)
		pipe.Set(ctx, refreshHashPrefix+token.TokenHash, token.ID, s.gcTTL)
		pipe.SAdd(ctx, userKey, token.TokenHash)
		pipe.Expire(ctx, userKey, s.gcTTL)
		return nil
	})
	if err != nil {
		return util.LogError("[RedisTokenStore] ошибка сохранения токена в Redis", err)
	}

	return nil
}

func (s *RedisRefreshTokenStore) FindByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	id, err := s.client.Client.Get(ctx, refreshHashPrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[RedisTokenStore] ошибка поиска токена по хэшу", err)
	}

	return s.FindByID(ctx, id)
}

func (s *RedisRefreshTokenStore) FindByID(ctx context.Context, id string) (*model.RefreshToken, error) {
	val, err := s.client.Client.Get(ctx, refreshIDPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[RedisTokenStore] ошибка получения токена из Redis", err)
	}

	var token model.RefreshToken
	if err := json.Unmarshal([]byte(val), &token); err != nil {
		return nil, util.LogError("[RedisTokenStore] ошибка десериализации токена", err)
	}

	return &token, nil
}

// Update перезаписывает запись только если она ещё существует, TTL сохраняется
func (s *RedisRefreshTokenStore) Update(ctx context.Context, token *model.RefreshToken) (bool, error) {
	data, err := json.Marshal(token)
	if err != nil {
		return false, util.LogError("[RedisTokenStore] ошибка сериализации токена", err)
	}

	updated, err := s.client.Client.SetXX(ctx, refreshIDPrefix+token.ID, data, redis.KeepTTL).Result()
	if err != nil {
		return false, util.LogError("[RedisTokenStore] ошибка обновления токена в Redis", err)
	}

	return updated, nil
}

func (s *RedisRefreshTokenStore) Delete(ctx context.Context, id string) (bool, error) {
	token, err := s.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if token == nil {
		return false, nil
	}

	return s.deleteRecord(ctx, token.ID, token.TokenHash, token.UserID)
}

func (s *RedisRefreshTokenStore) DeleteByHash(ctx context.Context, tokenHash string) error {
	token, err := s.FindByHash(ctx, tokenHash)
	if err != nil {
		return err
	}
	if token == nil {
		return nil
	}

	_, err = s.deleteRecord(ctx, token.ID, token.TokenHash, token.UserID)
	return err
}

func (s *RedisRefreshTokenStore) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	removed, err := deleteUserRefreshTokensScript.Run(ctx, s.client.Client,
		[]string{refreshUserPrefix + userID},
		refreshIDPrefix, refreshHashPrefix,
	).Int64()
	if err != nil {
		return 0, util.LogError("[RedisTokenStore] ошибка удаления токенов пользователя", err)
	}

	return removed, nil
}

func (s *RedisRefreshTokenStore) deleteRecord(ctx context.Context, id, tokenHash, userID string) (bool, error) {
	deleted, err := deleteRefreshTokenScript.Run(ctx, s.client.Client,
		[]string{refreshIDPrefix + id, refreshHashPrefix + tokenHash, refreshUserPrefix + userID},
		tokenHash,
	).Int64()
	if err != nil {
		return false, util.LogError("[RedisTokenStore] ошибка удаления токена", err)
	}

	return deleted == 1, nil
}
