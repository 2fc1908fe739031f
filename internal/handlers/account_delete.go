package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/services"
)

// AccountDeleter defines the interface that the service must implement.
type AccountDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AccountDeleteResponse represents a successful account deletion response
// swagger:model AccountDeleteResponse
type AccountDeleteResponse struct {
	// Success message
	// default: Account deleted
	Message string `json:"message"`
}

// AccountErrorResponse represents an error response for account operations
// swagger:model AccountErrorResponse
type AccountErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewAccountDeleteHandler returns an HTTP handler deleting the account.
// @Summary Delete the account
// @Description Permanently removes the profile, all images, generations, purchases and storage objects.
// @Tags account
// @Produce json
// @Success 200 {object} handlers.AccountDeleteResponse "Account deleted"
// @Failure 401 {object} handlers.AccountErrorResponse "Unauthorized"
// @Router /account/delete [post]
// @Security BearerAuth
func NewAccountDeleteHandler(svc AccountDeleter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		if err := svc.Delete(ctx, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Profile not found"})
			default:
				logger.Log.Errorw("failed to delete account", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AccountDeleteResponse{Message: "Account deleted"})
	}
}
