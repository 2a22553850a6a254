package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/safedrive-rewards/internal/middlewares"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

// ErrorResponse is the body of every error response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Detail string `json:"detail"`
}

// TokenResponse is returned by signup and login.
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed bearer token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Token type
	// default: bearer
	TokenType string `json:"token_type"`
}

// MessageResponse is a plain confirmation.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

const internalError = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

// currentUser returns the user set by the auth middleware or answers 401.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		middlewares.Unauthorized(w)
		return nil, false
	}
	return user, true
}
