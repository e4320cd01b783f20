package impl

import (
	"context"
	"errors"
	"log/slog"

	"messaging-api/internal/domain"
	"messaging-api/internal/dto"
	"messaging-api/internal/observability/metrics"
	"messaging-api/internal/observability/middleware"
	"messaging-api/internal/service"
	"messaging-api/internal/wireclock"
)

// userStore is the slice of the store the auth flow needs; *store.UserStore
// satisfies it, tests plug in a fake.
type userStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	SetLastLogin(ctx context.Context, id int64, at wireclock.Time) error
}

type AuthServiceImpl struct {
	users     userStore
	passwords service.PasswordService
	tokens    service.TokenService
	now       func() wireclock.Time
}

func NewAuthServiceImpl(users userStore, passwords service.PasswordService, tokens service.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		now:       wireclock.Now,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, r dto.LoginRequest) (*dto.LoginResponse, error) {
	result := "success"
	defer func() {
		metrics.LoginsTotal.WithLabelValues(result).Inc()
	}()

	if r.Username == "" || r.Password == "" {
		result = "failure"
		return nil, ErrEmptyCredential
	}

	user, err := a.users.GetByUsername(ctx, r.Username)
	if err != nil {
		result = "failure"
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// Failed verification must leave last_login untouched.
	if !a.passwords.Verify(r.Password, user.PasswordHash) {
		result = "failure"
		return nil, domain.ErrInvalidCredentials
	}

	if err := a.users.SetLastLogin(ctx, user.ID, a.now()); err != nil {
		result = "failure"
		return nil, err
	}

	token, err := a.tokens.Issue(user.Username)
	if err != nil {
		result = "failure"
		return nil, err
	}

	reqID := middleware.RequestIDFromContext(ctx)
	slog.Info("user authenticated", "user_id", user.ID, "username", user.Username, "request_id", reqID)

	return &dto.LoginResponse{Username: user.Username, Token: token}, nil
}
