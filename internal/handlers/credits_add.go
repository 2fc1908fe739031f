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

// CreditAdder defines the interface that the service must implement.
type CreditAdder interface {
	Add(ctx context.Context, userID uuid.UUID, credits int64, amountPaid float64) (int64, error)
}

// CreditsAddRequest represents the JSON body for adding credits
// swagger:model CreditsAddRequest
type CreditsAddRequest struct {
	// Credits to add
	// required: true
	// default: 10
	Credits int64 `json:"credits"`

	// Amount paid for the pack
	// default: 9.99
	Amount float64 `json:"amount"`
}

// CreditsAddResponse represents a successful top-up response
// swagger:model CreditsAddResponse
type CreditsAddResponse struct {
	// Success message
	// default: Credits added
	Message string `json:"message"`

	// New balance
	Credits int64 `json:"credits"`
}

// NewCreditsAddHandler returns an HTTP handler for adding credits.
// @Summary Add credits
// @Description Grants a credit pack to the authenticated user and records the purchase.
// @Tags credits
// @Accept json
// @Produce json
// @Param creditsAddRequest body handlers.CreditsAddRequest true "Credit pack request"
// @Success 200 {object} handlers.CreditsAddResponse "Credits added"
// @Failure 400 {object} handlers.CreditsErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.CreditsErrorResponse "Unauthorized"
// @Router /credits/add [post]
// @Security BearerAuth
func NewCreditsAddHandler(svc CreditAdder, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req CreditsAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreditsErrorResponse{Error: "Invalid request body"})
			return
		}

		balance, err := svc.Add(ctx, claims.UserID, req.Credits, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCreditAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreditsErrorResponse{Error: "Credit amount must be positive"})
			default:
				logger.Log.Errorw("failed to add credits", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreditsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreditsAddResponse{
			Message: "Credits added",
			Credits: balance,
		})
	}
}
