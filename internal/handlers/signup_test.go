package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safedrive-rewards/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockSignuper)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "john", "john@example.com", "secret").
					Return("token-123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"access_token": "token-123", "token_type": "bearer"},
		},
		{
			name: "user already exists",
			body: `{"username":"alice","email":"alice@example.com","password":"pass"}`,
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "alice", "alice@example.com", "pass").
					Return("", services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"detail": "Username already registered"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","email":"bob@example.com","password":"pass"}`,
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "bob@example.com", "pass").
					Return("", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"detail": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"detail": "invalid request body"},
		},
		{
			name:         "missing password",
			body:         `{"username":"john","email":"john@example.com"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"detail": "password is required"},
		},
		{
			name:         "password too long",
			body:         `{"username":"john","email":"john@example.com","password":"` + strings.Repeat("a", 73) + `"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"detail": "password must be at most 72 bytes"},
		},
		{
			name:         "blank username",
			body:         `{"username":"  ","email":"john@example.com","password":"x"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"detail": "username is required"},
		},
		{
			name:         "invalid email",
			body:         `{"username":"john","email":"not-an-email","password":"x"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"detail": "email is not a valid email address"},
		},
		{
			name:         "display name in email",
			body:         `{"username":"john","email":"John <john@example.com>","password":"x"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"detail": "email is not a valid email address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSignuper(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSignupHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
