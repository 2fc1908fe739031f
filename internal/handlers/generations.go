package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// HistoryLister defines the interface that the service must implement.
type HistoryLister interface {
	History(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIGenerationDB, error)
}

// GenerationsResponse represents the generation history
// swagger:model GenerationsResponse
type GenerationsResponse struct {
	// Most recent generations, newest first
	Generations []models.AIGenerationDB `json:"generations"`
}

// GenerationsErrorResponse represents an error response for history reads
// swagger:model GenerationsErrorResponse
type GenerationsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewGenerationsHandler returns an HTTP handler for the generation history.
// @Summary List recent generations
// @Description Returns the authenticated user's most recent generation attempts, newest first.
// @Tags generation
// @Produce json
// @Param limit query int false "Max rows, default 10"
// @Success 200 {object} handlers.GenerationsResponse "Generation history"
// @Failure 401 {object} handlers.GenerationsErrorResponse "Unauthorized"
// @Router /generations [get]
// @Security BearerAuth
func NewGenerationsHandler(svc HistoryLister, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		gens, err := svc.History(ctx, claims.UserID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list generations", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GenerationsErrorResponse{Error: "Internal server error"})
			return
		}
		if gens == nil {
			gens = []models.AIGenerationDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GenerationsResponse{Generations: gens})
	}
}
