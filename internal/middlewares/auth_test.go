package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
	"github.com/sbilibin2017/safedrive-rewards/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	alice := &models.User{ID: 7, Username: "alice"}

	tests := []struct {
		name             string
		mockSetup        func(e *MockTokenExtractor, a *MockAuthenticator)
		expectedStatus   int
		expectChallenge  bool
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
		},
		{
			name: "InvalidToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				a.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(nil, services.ErrUnauthorized)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
		},
		{
			name: "StoreFailure",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				a.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "ValidToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				a.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return(alice, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			extractor := NewMockTokenExtractor(ctrl)
			auth := NewMockAuthenticator(ctrl)
			tt.mockSetup(extractor, auth)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, alice, GetUserFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(extractor, auth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectChallenge {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))

				var body map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, "Could not validate credentials", body["detail"])
			}
		})
	}
}

func TestGetUserFromContext_Empty(t *testing.T) {
	assert.Nil(t, GetUserFromContext(context.Background()))
}
