// Package apperrors maps raw error text to user-safe messages before it
// leaves the service boundary.
package apperrors

import "strings"

// Environments controlling message sanitization.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// GenericMessage is shown for errors with no safe mapping in production.
const GenericMessage = "An error occurred. Please try again or contact support if the problem persists."

// safePassthrough lists phrases whose messages are already actionable and
// safe to show users verbatim.
var safePassthrough = []string{
	"rate limit",
	"credit",
	"storage",
}

// Sanitize returns a user-safe message for err. In development the raw
// message passes through; in production only network/auth hints and the
// safe-passthrough phrase classes survive.
func Sanitize(err error, env string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	if env != EnvProduction {
		return msg
	}

	lower := strings.ToLower(msg)

	if strings.Contains(lower, "fetch") || strings.Contains(lower, "connection") || strings.Contains(lower, "network") {
		return "Network error. Please check your connection and try again."
	}
	if strings.Contains(lower, "unauthorized") || strings.Contains(lower, "auth") {
		return "Authentication error. Please sign in again."
	}
	for _, phrase := range safePassthrough {
		if strings.Contains(lower, phrase) {
			return msg
		}
	}

	return GenericMessage
}
