package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// ProfileCacheRepository provides a cached profile view in Redis. Every
// balance- or storage-changing operation must invalidate it.
type ProfileCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewProfileCacheRepository creates a new cache repository with a TTL.
func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(profileID uuid.UUID) string {
	return fmt.Sprintf("profile:%s", profileID)
}

// Get fetches a cached profile. Returns an error on cache miss.
func (r *ProfileCacheRepository) Get(ctx context.Context, profileID uuid.UUID) (*models.ProfileDB, error) {
	key := profileKey(profileID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("profile not found in cache for %s", profileID)
		}
		return nil, err
	}

	var profile models.ProfileDB
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", profile.ProfileID,
		"error", nil,
	)

	return &profile, nil
}

// Set caches a profile with expiration.
func (r *ProfileCacheRepository) Set(ctx context.Context, profile *models.ProfileDB) error {
	key := profileKey(profile.ProfileID)

	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached view so subsequent reads hit the database.
func (r *ProfileCacheRepository) Invalidate(ctx context.Context, profileID uuid.UUID) error {
	key := profileKey(profileID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "invalidated",
		"error", err,
	)

	return err
}
