package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/services"
)

// GalleryDeleter defines the interface that the service must implement.
type GalleryDeleter interface {
	Delete(ctx context.Context, userID, imageID uuid.UUID) error
}

// GalleryDeleteResponse represents a successful deletion response
// swagger:model GalleryDeleteResponse
type GalleryDeleteResponse struct {
	// Success message
	// default: Image deleted
	Message string `json:"message"`
}

// NewGalleryDeleteHandler returns an HTTP handler deleting one image.
// @Summary Delete a gallery image
// @Description Removes the image row, its storage objects and gives the bytes back to the storage quota.
// @Tags gallery
// @Produce json
// @Param id path string true "Image id"
// @Success 200 {object} handlers.GalleryDeleteResponse "Image deleted"
// @Failure 401 {object} handlers.GalleryErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GalleryErrorResponse "Image not found"
// @Router /gallery/{id} [delete]
// @Security BearerAuth
func NewGalleryDeleteHandler(svc GalleryDeleter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		imageID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GalleryErrorResponse{Error: "Invalid image id"})
			return
		}

		if err := svc.Delete(ctx, claims.UserID, imageID); err != nil {
			switch {
			case errors.Is(err, services.ErrImageNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GalleryErrorResponse{Error: "Image not found"})
			default:
				logger.Log.Errorw("failed to delete image", "imageID", imageID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GalleryErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GalleryDeleteResponse{Message: "Image deleted"})
	}
}
