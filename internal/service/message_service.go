package service

import (
	"context"

	"messaging-api/internal/domain"
	"messaging-api/internal/dto"
)

type MessageService interface {
	// Send stores a new message; clientIP backs the sender address when the
	// request does not carry one.
	Send(ctx context.Context, r dto.SendMessageRequest, clientIP string) (*domain.Message, error)
	Get(ctx context.Context, id int64) (*domain.Message, error)
	MarkRead(ctx context.Context, r dto.ReadMessageRequest, clientIP string) error
	// Delete stamps the per-actor deletion timestamps and returns a status
	// line describing which side, if any, was affected.
	Delete(ctx context.Context, r dto.DeleteMessageRequest) (string, error)
}
