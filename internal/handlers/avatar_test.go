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

	"github.com/jewelshot/jewelshot-api/internal/jwt"
	"github.com/jewelshot/jewelshot-api/internal/services"
)

func multipartAvatar(t *testing.T, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="avatar.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestAvatarHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		fileContentType    string
		setupMocks         func(mockSvc *MockAvatarUpdater, mockTokener *MockTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:            "successful upload",
			fileContentType: "image/jpeg",
			setupMocks: func(mockSvc *MockAvatarUpdater, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().
					UpdateAvatar(gomock.Any(), userID, "image/jpeg", gomock.Any()).
					Return("https://cdn.example.com/avatars/avatar.jpg", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "avatar_url",
		},
		{
			name:            "unauthorized missing token",
			fileContentType: "image/jpeg",
			setupMocks: func(mockSvc *MockAvatarUpdater, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:            "not an image",
			fileContentType: "application/pdf",
			setupMocks: func(mockSvc *MockAvatarUpdater, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().
					UpdateAvatar(gomock.Any(), userID, "application/pdf", gomock.Any()).
					Return("", services.ErrInvalidAvatarType)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:            "avatar too large",
			fileContentType: "image/jpeg",
			setupMocks: func(mockSvc *MockAvatarUpdater, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().
					UpdateAvatar(gomock.Any(), userID, "image/jpeg", gomock.Any()).
					Return("", services.ErrAvatarTooLarge)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:            "internal server error",
			fileContentType: "image/jpeg",
			setupMocks: func(mockSvc *MockAvatarUpdater, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().
					UpdateAvatar(gomock.Any(), userID, "image/jpeg", gomock.Any()).
					Return("", assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockAvatarUpdater(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			body, contentType := multipartAvatar(t, tt.fileContentType)

			req := httptest.NewRequest(http.MethodPost, "/profile/avatar", body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()

			handler := NewAvatarHandler(mockSvc, mockTokener)
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
