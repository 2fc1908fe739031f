package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Minute)
	userID := uuid.New()

	token, err := j.Generate(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.GetClaims(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	assert.NoError(t, j.Validate(context.Background(), token))
}

func TestGetClaims_WrongSecret(t *testing.T) {
	j := New("test-secret", time.Minute)
	other := New("other-secret", time.Minute)

	token, err := j.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = other.GetClaims(context.Background(), token)
	assert.Error(t, err)
}

func TestGetClaims_Expired(t *testing.T) {
	j := New("test-secret", -time.Minute)

	token, err := j.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	err = j.Validate(context.Background(), token)
	assert.Error(t, err)
}

func TestGetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase bearer", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing header", "", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"no token", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := j.GetTokenFromRequest(context.Background(), r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
