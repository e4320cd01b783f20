package service

import (
	"context"

	"messaging-api/internal/dto"
)

type AuthService interface {
	Login(ctx context.Context, r dto.LoginRequest) (*dto.LoginResponse, error)
}
