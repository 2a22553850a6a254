package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

// UserCacheRepository caches authenticated users in Redis.
// Only fields that never change after signup are cached: password hashes and the
// points balance are not written, so a cached user always has Points == 0 and the
// balance must be read with UserReadRepository.GetPoints.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a new cache with the given entry TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// cachedUser is the stored form of a user.
type cachedUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

func userCacheKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, username string) (*models.User, error) {
	key := userCacheKey(username)

	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		logger.Log.Debugw("user cache", "key", key, "result", "miss")
		return nil, nil
	}
	if err != nil {
		logger.Log.Debugw("user cache", "key", key, "error", err)
		return nil, err
	}

	var cached cachedUser
	if err := json.Unmarshal(val, &cached); err != nil {
		logger.Log.Debugw("user cache", "key", key, "value", string(val), "error", err)
		return nil, err
	}

	logger.Log.Debugw("user cache", "key", key, "result", "hit")
	return &models.User{
		ID:        cached.ID,
		Username:  cached.Username,
		Email:     cached.Email,
		Level:     cached.Level,
		CreatedAt: cached.CreatedAt,
	}, nil
}

// Set caches the user under its username.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	key := userCacheKey(user.Username)

	data, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Level:     user.Level,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("user cache", "key", key, "result", "set", "error", err)
	return err
}

// Delete drops the cached user.
func (r *UserCacheRepository) Delete(ctx context.Context, username string) error {
	key := userCacheKey(username)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("user cache", "key", key, "result", "deleted", "error", err)
	return err
}

// Ping checks the Redis connection.
func (r *UserCacheRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
