package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jewelshot/jewelshot-api/internal/apperrors"
	"github.com/jewelshot/jewelshot-api/internal/jwt"
	"github.com/jewelshot/jewelshot-api/internal/services"
)

// multipartImage builds a multipart body with an "image" file part and the
// given extra form fields.
func multipartImage(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="ring.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	assert.NoError(t, err)

	for k, v := range fields {
		assert.NoError(t, writer.WriteField(k, v))
	}
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestGenerateHandler(t *testing.T) {
	userID := uuid.New()
	imageID := uuid.New()
	generationID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		fields             map[string]string
		setupMocks         func(mockSvc *MockGenerator, mockTokener *MockTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:   "successful authenticated generation",
			fields: map[string]string{"mode": "quick", "jewelryType": "ring", "gender": "women"},
			setupMocks: func(mockSvc *MockGenerator, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, req services.GenerateRequest) (*services.GenerateResult, error) {
						assert.NotNil(t, req.UserID)
						assert.Equal(t, userID, *req.UserID)
						assert.Equal(t, "ring.jpg", req.FileName)
						assert.Equal(t, "quick", req.Mode)
						assert.Equal(t, "ring", req.Options.JewelryType)
						return &services.GenerateResult{
							ImageID:      &imageID,
							GenerationID: &generationID,
							OriginalURL:  "https://cdn.example.com/orig.jpg",
							ResultURL:    "https://cdn.example.com/result.png",
							Seed:         42,
							Credits:      2,
						}, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "result_url",
		},
		{
			name:   "successful anonymous generation",
			fields: map[string]string{"mode": "quick"},
			setupMocks: func(mockSvc *MockGenerator, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
				mockSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, req services.GenerateRequest) (*services.GenerateResult, error) {
						assert.Nil(t, req.UserID)
						return &services.GenerateResult{
							ResultURL: "https://inference.example.com/out.png",
							Seed:      7,
						}, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "result_url",
		},
		{
			name:   "invalid token",
			fields: map[string]string{},
			setupMocks: func(mockSvc *MockGenerator, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(nil, http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:   "invalid upload",
			fields: map[string]string{},
			setupMocks: func(mockSvc *MockGenerator, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
				mockSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidUpload)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:   "insufficient credits",
			fields: map[string]string{},
			setupMocks: func(mockSvc *MockGenerator, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, services.ErrInsufficientCredits)
			},
			expectedStatusCode: http.StatusPaymentRequired,
			expectedKey:        "error",
		},
		{
			name:   "rate limited",
			fields: map[string]string{},
			setupMocks: func(mockSvc *MockGenerator, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, services.ErrRateLimited)
			},
			expectedStatusCode: http.StatusTooManyRequests,
			expectedKey:        "error",
		},
		{
			name:   "storage limit exceeded",
			fields: map[string]string{},
			setupMocks: func(mockSvc *MockGenerator, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return(nil, &services.StorageLimitError{Used: services.StorageQuota, Quota: services.StorageQuota})
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:   "inference failure",
			fields: map[string]string{},
			setupMocks: func(mockSvc *MockGenerator, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
				mockSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, services.ErrGenerationFailed)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockGenerator(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			body, contentType := multipartImage(t, tt.fields)

			req := httptest.NewRequest(http.MethodPost, "/generate", body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()

			handler := NewGenerateHandler(mockSvc, mockTokener, apperrors.EnvDevelopment)
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

func TestGenerateHandlerMissingImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGenerator(ctrl)
	mockTokener := NewMockTokener(ctrl)
	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("mode", "quick"))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()

	handler := NewGenerateHandler(mockSvc, mockTokener, apperrors.EnvDevelopment)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
