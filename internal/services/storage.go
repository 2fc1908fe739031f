package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// StorageQuota is the per-profile upload allowance in bytes.
const StorageQuota int64 = 1 << 30 // 1 GB

// StorageLimitError is returned when an upload would push a profile past its
// quota. The message is shown to the user as-is.
type StorageLimitError struct {
	Used  int64
	Quota int64
}

func (e *StorageLimitError) Error() string {
	const gb = float64(1 << 30)
	return fmt.Sprintf("Storage limit exceeded. You've used %.2f GB of %.0f GB", float64(e.Used)/gb, float64(e.Quota)/gb)
}

// ObjectStorage abstracts the object store facade.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path, contentType string, data []byte, upsert bool) error
	Remove(ctx context.Context, bucket string, paths []string) error
	PublicURL(bucket, path string) string
}

// StorageUsageWriter adjusts a profile's storage counter.
type StorageUsageWriter interface {
	AddStorageUsed(ctx context.Context, profileID uuid.UUID, delta int64) error
}

// StorageService uploads image objects and enforces the per-profile quota.
type StorageService struct {
	storage ObjectStorage
	reader  ProfileReader
	usage   StorageUsageWriter
	cache   ProfileCache
	quota   int64
}

// NewStorageService creates a new StorageService. A non-positive quota falls
// back to StorageQuota.
func NewStorageService(storage ObjectStorage, reader ProfileReader, usage StorageUsageWriter, cache ProfileCache, quota int64) *StorageService {
	if quota <= 0 {
		quota = StorageQuota
	}
	return &StorageService{
		storage: storage,
		reader:  reader,
		usage:   usage,
		cache:   cache,
		quota:   quota,
	}
}

// objectPath builds a collision-resistant path under uploads/.
func objectPath(userID *uuid.UUID, fileName string) string {
	owner := "anonymous"
	if userID != nil {
		owner = userID.String()
	}
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext == "" {
		ext = "png"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("uploads/%s_%d_%s.%s", owner, time.Now().UnixMilli(), suffix, ext)
}

// UploadImage stores an image object and returns its path and public URL.
// For authenticated users the profile quota is checked first and the usage
// counter is bumped after a successful upload. The check reads the counter
// before uploading, so two concurrent uploads can both pass; the counter
// still ends up correct.
func (svc *StorageService) UploadImage(ctx context.Context, userID *uuid.UUID, fileName, contentType string, data []byte) (string, string, error) {
	size := int64(len(data))

	if userID != nil {
		profile, err := svc.reader.GetByID(ctx, *userID)
		if err != nil {
			logger.Log.Errorw("failed to get profile for quota check", "userID", *userID, "err", err)
			return "", "", err
		}
		if profile == nil {
			return "", "", ErrUserDoesNotExist
		}
		if profile.StorageUsed+size > svc.quota {
			return "", "", &StorageLimitError{Used: profile.StorageUsed, Quota: svc.quota}
		}
	}

	path := objectPath(userID, fileName)
	if err := svc.storage.Upload(ctx, models.BucketImages, path, contentType, data, false); err != nil {
		logger.Log.Errorw("failed to upload object", "path", path, "err", err)
		return "", "", err
	}

	if userID != nil {
		if err := svc.usage.AddStorageUsed(ctx, *userID, size); err != nil {
			logger.Log.Errorw("failed to bump storage counter", "userID", *userID, "err", err)
			return "", "", err
		}
		if svc.cache != nil {
			if err := svc.cache.Invalidate(ctx, *userID); err != nil {
				logger.Log.Warnw("failed to invalidate profile cache", "userID", *userID, "err", err)
			}
		}
	}

	return path, svc.storage.PublicURL(models.BucketImages, path), nil
}

// ReleaseObjects removes objects and gives the freed bytes back to the
// profile's counter. Removal failures are logged, not returned: orphaned
// objects are preferable to failing the user-facing delete.
func (svc *StorageService) ReleaseObjects(ctx context.Context, userID uuid.UUID, paths []string, freedBytes int64) error {
	if len(paths) > 0 {
		if err := svc.storage.Remove(ctx, models.BucketImages, paths); err != nil {
			logger.Log.Warnw("failed to remove objects", "userID", userID, "paths", paths, "err", err)
		}
	}

	if freedBytes > 0 {
		if err := svc.usage.AddStorageUsed(ctx, userID, -freedBytes); err != nil {
			logger.Log.Errorw("failed to release storage counter", "userID", userID, "err", err)
			return err
		}
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warnw("failed to invalidate profile cache", "userID", userID, "err", err)
		}
	}

	return nil
}
