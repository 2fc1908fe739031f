package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
	"github.com/jewelshot/jewelshot-api/internal/repositories"
)

// GalleryLister defines the interface that the service must implement.
type GalleryLister interface {
	List(ctx context.Context, userID uuid.UUID, filter repositories.ImageListFilter) ([]models.ImageDB, int64, error)
}

// GalleryListResponse represents one page of the gallery
// swagger:model GalleryListResponse
type GalleryListResponse struct {
	// Images on this page
	Images []models.ImageDB `json:"images"`

	// Total matching images across all pages
	Total int64 `json:"total"`
}

// GalleryErrorResponse represents an error response for gallery operations
// swagger:model GalleryErrorResponse
type GalleryErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewGalleryListHandler returns an HTTP handler listing the user's images.
// @Summary List gallery images
// @Description Returns one page of the authenticated user's images, newest first. Supports filtering by jewelry type and generation mode.
// @Tags gallery
// @Produce json
// @Param jewelry_type query string false "Filter by jewelry type"
// @Param mode query string false "Filter by generation mode"
// @Param sort query string false "Set to oldest to reverse the order"
// @Param limit query int false "Page size, default 20"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.GalleryListResponse "One gallery page"
// @Failure 401 {object} handlers.GalleryErrorResponse "Unauthorized"
// @Router /gallery [get]
// @Security BearerAuth
func NewGalleryListHandler(svc GalleryLister, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		filter := repositories.ImageListFilter{
			JewelryType: r.URL.Query().Get("jewelry_type"),
			Mode:        r.URL.Query().Get("mode"),
			SortOldest:  r.URL.Query().Get("sort") == "oldest",
			Limit:       limit,
			Offset:      offset,
		}

		images, total, err := svc.List(ctx, claims.UserID, filter)
		if err != nil {
			logger.Log.Errorw("failed to list gallery", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GalleryErrorResponse{Error: "Internal server error"})
			return
		}
		if images == nil {
			images = []models.ImageDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GalleryListResponse{
			Images: images,
			Total:  total,
		})
	}
}
