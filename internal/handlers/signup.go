package handlers

//go:generate mockgen -source=signup.go -destination=mock_signup.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/sbilibin2017/safedrive-rewards/internal/jwt"
	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/services"
)

const (
	maxUsernameLen = 50
	maxEmailLen    = 100
	// bcrypt only hashes the first 72 bytes
	maxPasswordLen = 72
)

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password string) (string, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

func (req SignupRequest) validate() error {
	switch {
	case strings.TrimSpace(req.Username) == "":
		return errors.New("username is required")
	case len(req.Username) > maxUsernameLen:
		return errors.New("username is too long")
	case req.Email == "":
		return errors.New("email is required")
	case len(req.Email) > maxEmailLen:
		return errors.New("email is too long")
	case req.Password == "":
		return errors.New("password is required")
	case len(req.Password) > maxPasswordLen:
		return errors.New("password must be at most 72 bytes")
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return errors.New("email is not a valid email address")
	}
	return nil
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user with zero points and level Bronze and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 200 {object} handlers.TokenResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Username already registered"
// @Failure 422 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		token, err := svc.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username already registered")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, internalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   jwt.TokenType,
		})
	}
}
