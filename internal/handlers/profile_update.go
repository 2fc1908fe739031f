package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, fullName *string) (*models.ProfileDB, error)
}

// ProfileUpdateRequest represents the JSON body for profile updates
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// Full name
	// default: Jane Doe
	FullName *string `json:"full_name"`
}

// NewProfileUpdateHandler returns an HTTP handler for updating the profile.
// @Summary Update the current profile
// @Description Changes the display name and returns the fresh profile.
// @Tags profile
// @Accept json
// @Produce json
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Profile update request"
// @Success 200 {object} models.ProfileDB "The updated profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Router /profile [patch]
// @Security BearerAuth
func NewProfileUpdateHandler(svc ProfileUpdater, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.FullName != nil {
			trimmed := strings.TrimSpace(*req.FullName)
			if trimmed == "" || len(trimmed) > 100 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Full name must be between 1 and 100 characters"})
				return
			}
			req.FullName = &trimmed
		}

		profile, err := svc.Update(ctx, claims.UserID, req.FullName)
		if err != nil {
			logger.Log.Errorw("failed to update profile", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
