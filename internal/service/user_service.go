package service

import (
	"context"

	"messaging-api/internal/domain"
	"messaging-api/internal/dto"
)

type UserService interface {
	Register(ctx context.Context, r dto.RegisterUserRequest) (*domain.User, error)
	// List accepts the raw path strings; invalid or missing values fall back
	// to the defaults (limit 10, page 1).
	List(ctx context.Context, limitRaw, pageRaw string) ([]domain.User, error)
	// Get resolves a numeric id or a username.
	Get(ctx context.Context, key string) (*domain.User, error)
	Update(ctx context.Context, r dto.UpdateUserRequest) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}
