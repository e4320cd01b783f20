package store

import (
	"context"
	"errors"

	"messaging-api/internal/domain"
	"messaging-api/internal/wireclock"

	"gorm.io/gorm"
)

type MessageStore struct{ db *gorm.DB }

func (s *Store) Messages() *MessageStore { return &MessageStore{db: s.DB} }

func (m *MessageStore) Create(ctx context.Context, msg *domain.Message) error {
	return m.db.WithContext(ctx).Create(msg).Error
}

func (m *MessageStore) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	var msg domain.Message
	if err := m.db.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// MarkRead stamps read_at and reader_address. Repeated calls overwrite the
// previous stamp: last write wins, never an error.
func (m *MessageStore) MarkRead(ctx context.Context, id int64, readerAddress string, at wireclock.Time) error {
	res := m.db.WithContext(ctx).Model(&domain.Message{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"read_at":        at,
			"reader_address": readerAddress,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// SoftDelete stamps the deletion timestamp for each side the actor owns.
// Sender and recipient are checked independently so a self-addressed message
// is hidden from both views at once. An actor matching neither side is a
// successful no-op.
func (m *MessageStore) SoftDelete(ctx context.Context, id, actorID int64, at wireclock.Time) (bySender, byRecipient bool, err error) {
	var msg domain.Message
	if err := m.db.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, false, domain.ErrMessageNotFound
		}
		return false, false, err
	}

	changes := map[string]any{}
	if actorID == msg.SenderID {
		changes["deleted_by_sender"] = at
		bySender = true
	}
	if actorID == msg.RecipientID {
		changes["deleted_by_recipient"] = at
		byRecipient = true
	}
	if len(changes) == 0 {
		return false, false, nil
	}

	if err := m.db.WithContext(ctx).Model(&msg).Updates(changes).Error; err != nil {
		return false, false, err
	}
	return bySender, byRecipient, nil
}
