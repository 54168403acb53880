package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionTTL = 24 * time.Hour

// RedisStore keeps session transcripts in Redis so memory survives process
// restarts and is shared across replicas.
type RedisStore struct {
	rdb   *redis.Client
	limit int
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, db, limit int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{rdb: rdb, limit: limit}, nil
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("chat:session:%s", sessionID)
}

func (r *RedisStore) History(ctx context.Context, sessionID string) ([]Turn, error) {
	raw, err := r.rdb.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var turn Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("failed to decode session turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (r *RedisStore) Append(ctx context.Context, sessionID string, turns ...Turn) error {
	key := sessionKey(sessionID)

	pipe := r.rdb.Pipeline()
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			return err
		}
		pipe.RPush(ctx, key, data)
	}
	pipe.LTrim(ctx, key, int64(-r.limit), -1)
	pipe.Expire(ctx, key, sessionTTL)

	_, err := pipe.Exec(ctx)
	return err
}
