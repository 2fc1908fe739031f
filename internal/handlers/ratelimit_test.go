package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jewelshot/jewelshot-api/internal/jwt"
	"github.com/jewelshot/jewelshot-api/internal/services"
)

func TestRateLimitHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"
	resetAt := time.Now().Add(time.Hour)

	tests := []struct {
		name               string
		setupMocks         func(mockSvc *MockRateLimitChecker, mockTokener *MockTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "window open",
			setupMocks: func(mockSvc *MockRateLimitChecker, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Check(gomock.Any(), userID).Return(services.RateLimitResult{
					Allowed:   true,
					Limit:     10,
					Remaining: 7,
					ResetAt:   resetAt,
				})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "remaining",
		},
		{
			name: "window exhausted still returns 200",
			setupMocks: func(mockSvc *MockRateLimitChecker, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Check(gomock.Any(), userID).Return(services.RateLimitResult{
					Allowed:   false,
					Limit:     10,
					Remaining: 0,
					ResetAt:   resetAt,
				})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "allowed",
		},
		{
			name: "unauthorized missing token",
			setupMocks: func(mockSvc *MockRateLimitChecker, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRateLimitChecker(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/rate-limit", nil)
			rr := httptest.NewRecorder()

			handler := NewRateLimitHandler(mockSvc, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
