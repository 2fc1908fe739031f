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

// BalanceGetter defines the interface that the service must implement.
type BalanceGetter interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)
}

// CreditsResponse represents the credit balance
// swagger:model CreditsResponse
type CreditsResponse struct {
	// Remaining credits
	// default: 3
	Credits int64 `json:"credits"`
}

// CreditsErrorResponse represents an error response for credit operations
// swagger:model CreditsErrorResponse
type CreditsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreditsGetHandler returns an HTTP handler for reading the balance.
// @Summary Get the credit balance
// @Description Returns the authenticated user's remaining generation credits.
// @Tags credits
// @Produce json
// @Success 200 {object} handlers.CreditsResponse "The balance"
// @Failure 401 {object} handlers.CreditsErrorResponse "Unauthorized"
// @Router /credits [get]
// @Security BearerAuth
func NewCreditsGetHandler(svc BalanceGetter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		credits, err := svc.GetBalance(ctx, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CreditsErrorResponse{Error: "Profile not found"})
			default:
				logger.Log.Errorw("failed to get balance", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreditsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreditsResponse{Credits: credits})
	}
}
