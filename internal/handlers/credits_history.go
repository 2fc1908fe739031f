package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// PurchaseHistorian defines the interface that the service must implement.
type PurchaseHistorian interface {
	History(ctx context.Context, userID uuid.UUID) ([]models.PurchaseDB, error)
}

// CreditsHistoryResponse represents the purchase history
// swagger:model CreditsHistoryResponse
type CreditsHistoryResponse struct {
	// Purchases, newest first
	Purchases []models.PurchaseDB `json:"purchases"`
}

// NewCreditsHistoryHandler returns an HTTP handler for the purchase history.
// @Summary List credit purchases
// @Description Returns the authenticated user's credit-pack purchases, newest first.
// @Tags credits
// @Produce json
// @Success 200 {object} handlers.CreditsHistoryResponse "Purchase history"
// @Failure 401 {object} handlers.CreditsErrorResponse "Unauthorized"
// @Router /credits/history [get]
// @Security BearerAuth
func NewCreditsHistoryHandler(svc PurchaseHistorian, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		purchases, err := svc.History(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list purchases", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreditsErrorResponse{Error: "Internal server error"})
			return
		}
		if purchases == nil {
			purchases = []models.PurchaseDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreditsHistoryResponse{Purchases: purchases})
	}
}
