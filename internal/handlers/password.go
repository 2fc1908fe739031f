package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/services"
	"github.com/jewelshot/jewelshot-api/internal/validation"
)

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// PasswordChangeRequest represents the JSON body for password changes
// swagger:model PasswordChangeRequest
type PasswordChangeRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// PasswordChangeResponse represents a successful password change response
// swagger:model PasswordChangeResponse
type PasswordChangeResponse struct {
	// Success message
	// default: Password updated
	Message string `json:"message"`
}

// NewPasswordChangeHandler returns an HTTP handler for password changes.
// @Summary Change the account password
// @Description Verifies the current password against the stored hash and replaces it with the new one.
// @Tags profile
// @Accept json
// @Produce json
// @Param passwordChangeRequest body handlers.PasswordChangeRequest true "Password change request"
// @Success 200 {object} handlers.PasswordChangeResponse "Password updated"
// @Failure 400 {object} handlers.ProfileErrorResponse "Weak new password"
// @Failure 401 {object} handlers.ProfileErrorResponse "Wrong current password"
// @Router /profile/password [post]
// @Security BearerAuth
func NewPasswordChangeHandler(svc PasswordChanger, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req PasswordChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Invalid request body"})
			return
		}

		if res := validation.ValidatePassword(req.NewPassword); !res.Valid {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: res.Error})
			return
		}

		if err := svc.ChangePassword(ctx, claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Current password is incorrect"})
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Profile not found"})
			default:
				logger.Log.Errorw("failed to change password", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PasswordChangeResponse{Message: "Password updated"})
	}
}
