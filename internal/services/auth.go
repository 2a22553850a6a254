package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/safedrive-rewards/internal/jwt"
	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
	"github.com/sbilibin2017/safedrive-rewards/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, hashedPassword string) error
}

// Tokener issues and parses access tokens.
type Tokener interface {
	Generate(ctx context.Context, username string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserCache caches users resolved from tokens.
type UserCache interface {
	Get(ctx context.Context, username string) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
}

// AuthService handles signup, login and token authentication.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	tokener Tokener
	cache   UserCache
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(reader UserReader, writer UserWriter, tokener Tokener, cache UserCache) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		tokener: tokener,
		cache:   cache,
	}
}

// Signup registers a new user and returns an access token for it.
func (svc *AuthService) Signup(ctx context.Context, username, email, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", username, "err", err)
		return "", err
	}
	if user != nil {
		logger.Log.Infow("username already registered", "username", username)
		return "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	if err := svc.writer.Save(ctx, username, email, string(hashedPassword)); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Infow("username or email already registered", "username", username, "email", email)
			return "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return "", err
	}

	token, err := svc.tokener.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "username", username, "err", err)
		return "", err
	}

	logger.Log.Infow("user signed up", "username", username)
	return token, nil
}

// Login authenticates a user and returns an access token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown user", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokener.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "username", username, "err", err)
		return "", err
	}

	return token, nil
}

// Authenticate validates the token and resolves it to a stored user.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := svc.tokener.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Infow("token rejected", "err", err)
		return nil, ErrUnauthorized
	}

	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, claims.Username)
		if err != nil {
			logger.Log.Warnw("failed to read user cache", "username", claims.Username, "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	user, err := svc.reader.GetByUsername(ctx, claims.Username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", claims.Username, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("token subject no longer exists", "username", claims.Username)
		return nil, ErrUnauthorized
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("failed to write user cache", "username", user.Username, "err", err)
		}
	}

	return user, nil
}
