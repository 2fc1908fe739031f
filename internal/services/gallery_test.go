package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jewelshot/jewelshot-api/internal/models"
	"github.com/jewelshot/jewelshot-api/internal/repositories"
	"github.com/jewelshot/jewelshot-api/internal/services"
)

func TestGalleryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockImageReader(ctrl)
	svc := services.NewGalleryService(mockReader, nil, nil)

	userID := uuid.New()
	filter := repositories.ImageListFilter{JewelryType: "ring", Limit: 20}
	images := []models.ImageDB{{ImageID: uuid.New(), UserID: userID}}

	mockReader.EXPECT().ListByUserID(gomock.Any(), userID, filter).
		Return(images, int64(42), nil)

	got, total, err := svc.List(context.Background(), userID, filter)
	assert.NoError(t, err)
	assert.Equal(t, images, got)
	assert.Equal(t, int64(42), total)
}

func TestGalleryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	imageID := uuid.New()

	metadata, err := json.Marshal(models.ImageMetadata{OriginalPath: "uploads/original.png"})
	assert.NoError(t, err)

	image := &models.ImageDB{
		ImageID:     imageID,
		UserID:      userID,
		StoragePath: "uploads/result.png",
		FileSize:    2048,
		Metadata:    metadata,
	}

	t.Run("removes row, objects and quota bytes", func(t *testing.T) {
		mockReader := services.NewMockImageReader(ctrl)
		mockDeleter := services.NewMockImageDeleter(ctrl)
		mockReleaser := services.NewMockObjectReleaser(ctrl)
		svc := services.NewGalleryService(mockReader, mockDeleter, mockReleaser)

		mockReader.EXPECT().GetByID(gomock.Any(), imageID, userID).Return(image, nil)
		mockDeleter.EXPECT().Delete(gomock.Any(), imageID, userID).Return(nil)
		mockReleaser.EXPECT().
			ReleaseObjects(gomock.Any(), userID, []string{"uploads/result.png", "uploads/original.png"}, int64(2048)).
			Return(nil)

		err := svc.Delete(context.Background(), userID, imageID)
		assert.NoError(t, err)
	})

	t.Run("releases original and result bytes", func(t *testing.T) {
		// Generation charges the quota for the original and the re-hosted
		// result; delete must give both back or the counter drifts upward.
		metadata, err := json.Marshal(models.ImageMetadata{
			OriginalPath: "uploads/original.png",
			ResultSize:   250,
		})
		assert.NoError(t, err)

		generated := &models.ImageDB{
			ImageID:     imageID,
			UserID:      userID,
			StoragePath: "uploads/result.png",
			FileSize:    100,
			Metadata:    metadata,
		}

		mockReader := services.NewMockImageReader(ctrl)
		mockDeleter := services.NewMockImageDeleter(ctrl)
		mockReleaser := services.NewMockObjectReleaser(ctrl)
		svc := services.NewGalleryService(mockReader, mockDeleter, mockReleaser)

		mockReader.EXPECT().GetByID(gomock.Any(), imageID, userID).Return(generated, nil)
		mockDeleter.EXPECT().Delete(gomock.Any(), imageID, userID).Return(nil)
		mockReleaser.EXPECT().
			ReleaseObjects(gomock.Any(), userID, []string{"uploads/result.png", "uploads/original.png"}, int64(350)).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), userID, imageID))
	})

	t.Run("image not found", func(t *testing.T) {
		mockReader := services.NewMockImageReader(ctrl)
		svc := services.NewGalleryService(mockReader, nil, nil)

		mockReader.EXPECT().GetByID(gomock.Any(), imageID, userID).Return(nil, nil)

		err := svc.Delete(context.Background(), userID, imageID)
		assert.ErrorIs(t, err, services.ErrImageNotFound)
	})

	t.Run("row delete failure stops the cascade", func(t *testing.T) {
		mockReader := services.NewMockImageReader(ctrl)
		mockDeleter := services.NewMockImageDeleter(ctrl)
		svc := services.NewGalleryService(mockReader, mockDeleter, nil)

		mockReader.EXPECT().GetByID(gomock.Any(), imageID, userID).Return(image, nil)
		mockDeleter.EXPECT().Delete(gomock.Any(), imageID, userID).Return(assert.AnError)

		err := svc.Delete(context.Background(), userID, imageID)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
