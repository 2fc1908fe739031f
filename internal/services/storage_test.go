package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jewelshot/jewelshot-api/internal/models"
	"github.com/jewelshot/jewelshot-api/internal/services"
)

func TestStorageService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	data := []byte("image bytes")

	t.Run("authenticated upload under quota", func(t *testing.T) {
		mockStorage := services.NewMockObjectStorage(ctrl)
		mockReader := services.NewMockProfileReader(ctrl)
		mockUsage := services.NewMockStorageUsageWriter(ctrl)
		mockCache := services.NewMockProfileCache(ctrl)
		svc := services.NewStorageService(mockStorage, mockReader, mockUsage, mockCache, 0)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.ProfileDB{ProfileID: userID, StorageUsed: 100}, nil)
		mockStorage.EXPECT().
			Upload(gomock.Any(), models.BucketImages, gomock.Any(), "image/png", data, false).
			Return(nil)
		mockUsage.EXPECT().AddStorageUsed(gomock.Any(), userID, int64(len(data))).Return(nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)
		mockStorage.EXPECT().PublicURL(models.BucketImages, gomock.Any()).
			Return("https://cdn.example.com/object")

		path, url, err := svc.UploadImage(context.Background(), &userID, "ring.png", "image/png", data)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, "uploads/"+userID.String()+"_"))
		assert.True(t, strings.HasSuffix(path, ".png"))
		assert.Equal(t, "https://cdn.example.com/object", url)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		mockStorage := services.NewMockObjectStorage(ctrl)
		mockReader := services.NewMockProfileReader(ctrl)
		svc := services.NewStorageService(mockStorage, mockReader, nil, nil, 1000)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.ProfileDB{ProfileID: userID, StorageUsed: 995}, nil)

		_, _, err := svc.UploadImage(context.Background(), &userID, "ring.png", "image/png", data)

		var limitErr *services.StorageLimitError
		assert.ErrorAs(t, err, &limitErr)
		assert.Contains(t, err.Error(), "Storage limit exceeded")
	})

	t.Run("anonymous upload skips quota and counter", func(t *testing.T) {
		mockStorage := services.NewMockObjectStorage(ctrl)
		svc := services.NewStorageService(mockStorage, nil, nil, nil, 0)

		mockStorage.EXPECT().
			Upload(gomock.Any(), models.BucketImages, gomock.Any(), "image/jpeg", data, false).
			Return(nil)
		mockStorage.EXPECT().PublicURL(models.BucketImages, gomock.Any()).
			Return("https://cdn.example.com/anon")

		path, url, err := svc.UploadImage(context.Background(), nil, "ring.jpg", "image/jpeg", data)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, "uploads/anonymous_"))
		assert.Equal(t, "https://cdn.example.com/anon", url)
	})
}

func TestStorageService_ReleaseObjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	paths := []string{"uploads/a.png", "uploads/b.png"}

	t.Run("removes objects and frees quota", func(t *testing.T) {
		mockStorage := services.NewMockObjectStorage(ctrl)
		mockUsage := services.NewMockStorageUsageWriter(ctrl)
		mockCache := services.NewMockProfileCache(ctrl)
		svc := services.NewStorageService(mockStorage, nil, mockUsage, mockCache, 0)

		mockStorage.EXPECT().Remove(gomock.Any(), models.BucketImages, paths).Return(nil)
		mockUsage.EXPECT().AddStorageUsed(gomock.Any(), userID, int64(-512)).Return(nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)

		err := svc.ReleaseObjects(context.Background(), userID, paths, 512)
		assert.NoError(t, err)
	})

	t.Run("removal failure does not fail the release", func(t *testing.T) {
		mockStorage := services.NewMockObjectStorage(ctrl)
		mockUsage := services.NewMockStorageUsageWriter(ctrl)
		svc := services.NewStorageService(mockStorage, nil, mockUsage, nil, 0)

		mockStorage.EXPECT().Remove(gomock.Any(), models.BucketImages, paths).
			Return(assert.AnError)
		mockUsage.EXPECT().AddStorageUsed(gomock.Any(), userID, int64(-512)).Return(nil)

		err := svc.ReleaseObjects(context.Background(), userID, paths, 512)
		assert.NoError(t, err)
	})
}

func TestStorageLimitError_Message(t *testing.T) {
	err := &services.StorageLimitError{Used: 900 * 1024 * 1024, Quota: 1 << 30}
	assert.Equal(t, "Storage limit exceeded. You've used 0.88 GB of 1 GB", err.Error())
}
