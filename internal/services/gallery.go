package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
	"github.com/jewelshot/jewelshot-api/internal/repositories"
)

// ErrImageNotFound is returned when an image does not exist or belongs to
// another user.
var ErrImageNotFound = errors.New("image not found")

// ImageReader defines read operations for gallery images.
type ImageReader interface {
	GetByID(ctx context.Context, imageID, userID uuid.UUID) (*models.ImageDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, filter repositories.ImageListFilter) ([]models.ImageDB, int64, error)
}

// ImageDeleter removes gallery image rows.
type ImageDeleter interface {
	Delete(ctx context.Context, imageID, userID uuid.UUID) error
}

// ObjectReleaser frees storage objects and their quota bytes.
type ObjectReleaser interface {
	ReleaseObjects(ctx context.Context, userID uuid.UUID, paths []string, freedBytes int64) error
}

// GalleryService lists and deletes a user's images.
type GalleryService struct {
	reader   ImageReader
	deleter  ImageDeleter
	releaser ObjectReleaser
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(reader ImageReader, deleter ImageDeleter, releaser ObjectReleaser) *GalleryService {
	return &GalleryService{
		reader:   reader,
		deleter:  deleter,
		releaser: releaser,
	}
}

// List returns one page of the user's gallery plus the unpaged total.
func (svc *GalleryService) List(ctx context.Context, userID uuid.UUID, filter repositories.ImageListFilter) ([]models.ImageDB, int64, error) {
	images, total, err := svc.reader.ListByUserID(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list images", "userID", userID, "err", err)
		return nil, 0, err
	}
	return images, total, nil
}

// Delete removes an image row, its storage objects and its quota bytes.
// The row goes first: if the object removal fails the user still sees the
// image gone, and the orphan is cleaned up out of band.
func (svc *GalleryService) Delete(ctx context.Context, userID, imageID uuid.UUID) error {
	image, err := svc.reader.GetByID(ctx, imageID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get image", "imageID", imageID, "err", err)
		return err
	}
	if image == nil {
		return ErrImageNotFound
	}

	if err := svc.deleter.Delete(ctx, imageID, userID); err != nil {
		logger.Log.Errorw("failed to delete image row", "imageID", imageID, "err", err)
		return err
	}

	paths := []string{image.StoragePath}
	var meta models.ImageMetadata
	if len(image.Metadata) > 0 {
		if err := json.Unmarshal(image.Metadata, &meta); err != nil {
			logger.Log.Warnw("unreadable image metadata", "imageID", imageID, "err", err)
		}
	}
	if meta.OriginalPath != "" {
		paths = append(paths, meta.OriginalPath)
	}

	// Free both the original's and the re-hosted result's bytes, matching
	// what generation charged against the quota.
	return svc.releaser.ReleaseObjects(ctx, userID, paths, image.FileSize+meta.ResultSize)
}
