package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// StoragePathLister lists every object path a user's images reference.
type StoragePathLister interface {
	ListStoragePaths(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// UserDataPurger removes all of a user's rows from one table.
type UserDataPurger interface {
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// ProfileDeleter removes the profile row itself.
type ProfileDeleter interface {
	Delete(ctx context.Context, profileID uuid.UUID) error
}

// AccountService deletes an account and everything it owns.
type AccountService struct {
	reader      ProfileReader
	paths       StoragePathLister
	generations UserDataPurger
	purchases   UserDataPurger
	images      UserDataPurger
	storage     ObjectStorage
	profiles    ProfileDeleter
	cache       ProfileCache
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	reader ProfileReader,
	paths StoragePathLister,
	generations UserDataPurger,
	purchases UserDataPurger,
	images UserDataPurger,
	storage ObjectStorage,
	profiles ProfileDeleter,
	cache ProfileCache,
) *AccountService {
	return &AccountService{
		reader:      reader,
		paths:       paths,
		generations: generations,
		purchases:   purchases,
		images:      images,
		storage:     storage,
		profiles:    profiles,
		cache:       cache,
	}
}

// Delete removes the user's rows, storage objects and finally the profile.
// The profile goes last so a partial failure leaves a retryable account
// rather than orphaned rows with no owner. Object removal failures are
// logged and skipped for the same reason.
func (svc *AccountService) Delete(ctx context.Context, userID uuid.UUID) error {
	profile, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return err
	}
	if profile == nil {
		return ErrUserDoesNotExist
	}

	paths, err := svc.paths.ListStoragePaths(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list storage paths", "userID", userID, "err", err)
		return err
	}

	if err := svc.generations.DeleteByUserID(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete generations", "userID", userID, "err", err)
		return err
	}
	if err := svc.purchases.DeleteByUserID(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete purchases", "userID", userID, "err", err)
		return err
	}
	if err := svc.images.DeleteByUserID(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete images", "userID", userID, "err", err)
		return err
	}

	if len(paths) > 0 {
		if err := svc.storage.Remove(ctx, models.BucketImages, paths); err != nil {
			logger.Log.Warnw("failed to remove image objects", "userID", userID, "err", err)
		}
	}
	if avatarPath := avatarObjectPath(profile.AvatarURL); avatarPath != "" {
		if err := svc.storage.Remove(ctx, models.BucketAvatars, []string{avatarPath}); err != nil {
			logger.Log.Warnw("failed to remove avatar object", "userID", userID, "err", err)
		}
	}

	if err := svc.profiles.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete profile", "userID", userID, "err", err)
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warnw("failed to invalidate profile cache", "userID", userID, "err", err)
		}
	}

	return nil
}

// avatarObjectPath extracts the object path from a public avatar URL.
func avatarObjectPath(avatarURL *string) string {
	if avatarURL == nil {
		return ""
	}
	marker := "/" + models.BucketAvatars + "/"
	idx := strings.Index(*avatarURL, marker)
	if idx < 0 {
		return ""
	}
	return (*avatarURL)[idx+len(marker):]
}
