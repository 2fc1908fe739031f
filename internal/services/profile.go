package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// MaxAvatarSize caps avatar uploads at 2 MB.
const MaxAvatarSize = 2 * 1024 * 1024

// ErrAvatarTooLarge is returned when an avatar upload exceeds MaxAvatarSize.
var ErrAvatarTooLarge = fmt.Errorf("avatar must be smaller than %d MB", MaxAvatarSize/1024/1024)

// ErrInvalidAvatarType is returned when an avatar upload is not an image.
var ErrInvalidAvatarType = fmt.Errorf("avatar must be an image file")

// ProfileCache caches profiles in Redis.
type ProfileCache interface {
	Get(ctx context.Context, profileID uuid.UUID) (*models.ProfileDB, error)
	Set(ctx context.Context, profile *models.ProfileDB) error
	Invalidate(ctx context.Context, profileID uuid.UUID) error
}

// ProfileUpdater defines profile field updates.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, profileID uuid.UUID, fullName, avatarURL *string) error
}

// ProfileService handles profile reads and updates.
type ProfileService struct {
	reader  ProfileReader
	updater ProfileUpdater
	storage ObjectStorage
	cache   ProfileCache
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader ProfileReader, updater ProfileUpdater, storage ObjectStorage, cache ProfileCache) *ProfileService {
	return &ProfileService{
		reader:  reader,
		updater: updater,
		storage: storage,
		cache:   cache,
	}
}

// Get returns a profile, preferring the cache over the database.
func (svc *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	if svc.cache != nil {
		if profile, err := svc.cache.Get(ctx, userID); err == nil && profile != nil {
			return profile, nil
		}
	}

	profile, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserDoesNotExist
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, profile); err != nil {
			logger.Log.Warnw("failed to cache profile", "userID", userID, "err", err)
		}
	}

	return profile, nil
}

// Update changes the display name and returns the fresh profile.
func (svc *ProfileService) Update(ctx context.Context, userID uuid.UUID, fullName *string) (*models.ProfileDB, error) {
	if err := svc.updater.UpdateProfile(ctx, userID, fullName, nil); err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warnw("failed to invalidate profile cache", "userID", userID, "err", err)
		}
	}

	return svc.Get(ctx, userID)
}

// UpdateAvatar uploads a new avatar object and stores its public URL.
// The object path is stable per user so re-uploads overwrite in place.
func (svc *ProfileService) UpdateAvatar(ctx context.Context, userID uuid.UUID, contentType string, data []byte) (string, error) {
	if int64(len(data)) > MaxAvatarSize {
		return "", ErrAvatarTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrInvalidAvatarType
	}

	ext := strings.TrimPrefix(contentType, "image/")
	if ext == "jpeg" {
		ext = "jpg"
	}
	path := fmt.Sprintf("%s/avatar.%s", userID, ext)

	if err := svc.storage.Upload(ctx, models.BucketAvatars, path, contentType, data, true); err != nil {
		logger.Log.Errorw("failed to upload avatar", "userID", userID, "err", err)
		return "", err
	}

	url := svc.storage.PublicURL(models.BucketAvatars, path)
	if err := svc.updater.UpdateProfile(ctx, userID, nil, &url); err != nil {
		logger.Log.Errorw("failed to store avatar url", "userID", userID, "err", err)
		return "", err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warnw("failed to invalidate profile cache", "userID", userID, "err", err)
		}
	}

	return url, nil
}
