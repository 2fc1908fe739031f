package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_Development(t *testing.T) {
	err := errors.New("pq: relation \"images\" does not exist")
	assert.Equal(t, err.Error(), Sanitize(err, EnvDevelopment))
}

func TestSanitize_Production(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"network", errors.New("failed to fetch result image"), "Network error. Please check your connection and try again."},
		{"auth", errors.New("unauthorized: token expired"), "Authentication error. Please sign in again."},
		{"rate limit passthrough", errors.New("rate limit exceeded, try again in 12 minutes"), "rate limit exceeded, try again in 12 minutes"},
		{"credit passthrough", errors.New("insufficient credits"), "insufficient credits"},
		{"storage passthrough", errors.New("storage limit exceeded. You've used 0.93GB of 1.00GB"), "storage limit exceeded. You've used 0.93GB of 1.00GB"},
		{"internal detail hidden", errors.New("pq: deadlock detected"), GenericMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.err, EnvProduction))
		})
	}
}
