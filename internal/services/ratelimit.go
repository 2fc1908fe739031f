package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
)

// Default rate limiter settings.
const (
	DefaultRateLimit  = 10
	DefaultRateWindow = 60 * time.Minute
)

// GenerationCounter counts a user's generation attempts inside a window.
type GenerationCounter interface {
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

// RateLimitResult describes the limiter's verdict for one request.
type RateLimitResult struct {
	Allowed   bool      // Whether the request may proceed
	Limit     int       // Configured window limit
	Remaining int       // Requests left in the current window
	ResetAt   time.Time // When the window resets
	Err       error     // Set when the limiter failed open
}

// RateLimitService limits generations per user over a sliding window.
// The ai_generations table is the counting source, so no extra state is
// kept and a database outage degrades to allowing the request.
type RateLimitService struct {
	counter GenerationCounter
	limit   int
	window  time.Duration
}

// NewRateLimitService creates a new RateLimitService. Non-positive limit or
// window fall back to the defaults.
func NewRateLimitService(counter GenerationCounter, limit int, window time.Duration) *RateLimitService {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &RateLimitService{
		counter: counter,
		limit:   limit,
		window:  window,
	}
}

// Check counts the user's recent generations and decides whether one more is
// allowed. A counting failure fails open: the request is allowed and Err is
// set so callers can log it.
func (svc *RateLimitService) Check(ctx context.Context, userID uuid.UUID) RateLimitResult {
	now := time.Now()
	resetAt := now.Add(svc.window)

	count, err := svc.counter.CountSince(ctx, userID, now.Add(-svc.window))
	if err != nil {
		logger.Log.Warnw("rate limit check failed, allowing request", "userID", userID, "err", err)
		return RateLimitResult{
			Allowed:   true,
			Limit:     svc.limit,
			Remaining: svc.limit,
			ResetAt:   resetAt,
			Err:       err,
		}
	}

	remaining := svc.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return RateLimitResult{
		Allowed:   count < svc.limit,
		Limit:     svc.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
