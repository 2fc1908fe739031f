package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/services"
)

// RateLimitChecker defines the interface that the service must implement.
type RateLimitChecker interface {
	Check(ctx context.Context, userID uuid.UUID) services.RateLimitResult
}

// RateLimitResponse represents the current rate-limit window state
// swagger:model RateLimitResponse
type RateLimitResponse struct {
	// Whether another generation is currently allowed
	Allowed bool `json:"allowed"`

	// Window limit
	// default: 10
	Limit int `json:"limit"`

	// Requests left in the window
	Remaining int `json:"remaining"`

	// When the window resets, RFC 3339
	ResetAt time.Time `json:"reset_at"`
}

// NewRateLimitHandler returns an HTTP handler reporting the rate-limit state.
// @Summary Get rate-limit status
// @Description Reports how many generations remain in the authenticated user's current window.
// @Tags generation
// @Produce json
// @Success 200 {object} handlers.RateLimitResponse "Window state"
// @Failure 401 {object} handlers.GenerationsErrorResponse "Unauthorized"
// @Router /rate-limit [get]
// @Security BearerAuth
func NewRateLimitHandler(svc RateLimitChecker, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		result := svc.Check(ctx, claims.UserID)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RateLimitResponse{
			Allowed:   result.Allowed,
			Limit:     result.Limit,
			Remaining: result.Remaining,
			ResetAt:   result.ResetAt,
		})
	}
}
