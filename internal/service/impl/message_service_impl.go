package impl

import (
	"context"
	"errors"

	"messaging-api/internal/domain"
	"messaging-api/internal/dto"
	"messaging-api/internal/netutil"
	"messaging-api/internal/store"
	"messaging-api/internal/wireclock"

	"gorm.io/gorm"
)

const (
	StatusDeletedBySender    = "Message deleted successfully by sender"
	StatusDeletedByRecipient = "Message deleted successfully by recipient"
)

type MessageServiceImpl struct {
	store *store.Store
	now   func() wireclock.Time
}

func NewMessageServiceImpl(st *store.Store) *MessageServiceImpl {
	return &MessageServiceImpl{store: st, now: wireclock.Now}
}

func (s *MessageServiceImpl) Send(ctx context.Context, r dto.SendMessageRequest, clientIP string) (*domain.Message, error) {
	ve := &domain.ValidationError{}
	if r.SenderID <= 0 {
		ve.Add("senderId", "senderId is required")
	}
	if r.RecipientID <= 0 {
		ve.Add("recipientId", "recipientId is required")
	}
	if r.Body == "" {
		ve.Add("body", "body is required")
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	senderAddr := netutil.CanonicalAddr(r.SenderAddress)
	if senderAddr == "" {
		senderAddr = clientIP
	}

	msg := &domain.Message{
		SenderID:      r.SenderID,
		RecipientID:   r.RecipientID,
		Subject:       r.Subject,
		Body:          r.Body,
		SenderAddress: senderAddr,
		SentAt:        s.now(),
	}
	if err := s.store.Messages().Create(ctx, msg); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.NewValidationError("senderId", "sender or recipient does not exist")
		}
		return nil, err
	}
	return msg, nil
}

func (s *MessageServiceImpl) Get(ctx context.Context, id int64) (*domain.Message, error) {
	return s.store.Messages().GetByID(ctx, id)
}

func (s *MessageServiceImpl) MarkRead(ctx context.Context, r dto.ReadMessageRequest, clientIP string) error {
	readerAddr := netutil.CanonicalAddr(r.ReaderAddress)
	if readerAddr == "" {
		readerAddr = clientIP
	}
	return s.store.Messages().MarkRead(ctx, r.ID, readerAddr, s.now())
}

func (s *MessageServiceImpl) Delete(ctx context.Context, r dto.DeleteMessageRequest) (string, error) {
	bySender, byRecipient, err := s.store.Messages().SoftDelete(ctx, r.ID, r.DeletedBy, s.now())
	if err != nil {
		return "", err
	}
	// A non-participant actor deletes nothing and still succeeds; the empty
	// status mirrors that nothing happened.
	switch {
	case byRecipient:
		return StatusDeletedByRecipient, nil
	case bySender:
		return StatusDeletedBySender, nil
	default:
		return "", nil
	}
}
