package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jewelshot/jewelshot-api/internal/jwt"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

func TestCreditsHistoryHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		setupMocks         func(mockSvc *MockPurchaseHistorian, mockTokener *MockTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful history",
			setupMocks: func(mockSvc *MockPurchaseHistorian, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().History(gomock.Any(), userID).Return([]models.PurchaseDB{
					{PurchaseID: uuid.New(), UserID: userID, Credits: 10, Amount: 9.99, Status: models.PurchaseCompleted},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "purchases",
		},
		{
			name: "empty history",
			setupMocks: func(mockSvc *MockPurchaseHistorian, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().History(gomock.Any(), userID).Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "purchases",
		},
		{
			name: "unauthorized missing token",
			setupMocks: func(mockSvc *MockPurchaseHistorian, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "internal server error",
			setupMocks: func(mockSvc *MockPurchaseHistorian, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().History(gomock.Any(), userID).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockPurchaseHistorian(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/credits/history", nil)
			rr := httptest.NewRecorder()

			handler := NewCreditsHistoryHandler(mockSvc, mockTokener)
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
