package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
	"github.com/jewelshot/jewelshot-api/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewProfileGetHandler returns an HTTP handler for reading the profile.
// @Summary Get the current profile
// @Description Returns the authenticated user's profile including plan, credits, storage usage and generation count.
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileDB "The profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "Profile not found"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileGetHandler(svc ProfileGetter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		profile, err := svc.Get(ctx, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Profile not found"})
			default:
				logger.Log.Errorw("failed to get profile", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
