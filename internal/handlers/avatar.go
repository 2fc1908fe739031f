package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/services"
)

// AvatarUpdater defines the interface that the service must implement.
type AvatarUpdater interface {
	UpdateAvatar(ctx context.Context, userID uuid.UUID, contentType string, data []byte) (string, error)
}

// AvatarResponse represents a successful avatar upload response
// swagger:model AvatarResponse
type AvatarResponse struct {
	// Public URL of the new avatar
	AvatarURL string `json:"avatar_url"`
}

// NewAvatarHandler returns an HTTP handler for avatar uploads.
// @Summary Upload a profile avatar
// @Description Stores the avatar (max 2MB, image types only) and saves its public URL on the profile. Re-uploads overwrite the previous avatar.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} handlers.AvatarResponse "Avatar updated"
// @Failure 400 {object} handlers.ProfileErrorResponse "File too large or not an image"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Router /profile/avatar [post]
// @Security BearerAuth
func NewAvatarHandler(svc AvatarUpdater, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(services.MaxAvatarSize + 1<<20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Invalid multipart form"})
			return
		}

		file, header, err := r.FormFile("avatar")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Avatar file is required"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read avatar file", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Could not read avatar file"})
			return
		}

		url, err := svc.UpdateAvatar(ctx, claims.UserID, header.Header.Get("Content-Type"), data)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAvatarTooLarge),
				errors.Is(err, services.ErrInvalidAvatarType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("failed to update avatar", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AvatarResponse{AvatarURL: url})
	}
}
