package domain

import "messaging-api/internal/wireclock"

type Message struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID      int64           `gorm:"column:sender_id;not null;index" json:"senderId"`
	RecipientID   int64           `gorm:"column:recipient_id;not null;index" json:"recipientId"`
	Subject       string          `gorm:"size:255" json:"subject"`
	Body          string          `gorm:"type:text;not null" json:"body"`
	SentAt        wireclock.Time  `gorm:"column:sent_at;not null" json:"sentAt"`
	SenderAddress string          `gorm:"column:sender_address;size:20" json:"senderAddress"`
	ReadAt        *wireclock.Time `gorm:"column:read_at" json:"readAt"`
	ReaderAddress string          `gorm:"column:reader_address;size:20" json:"readerAddress"`
	// Deletion is per party: each side carries its own timestamp and the row
	// is never removed. A set timestamp hides the message from that actor only.
	DeletedBySender    *wireclock.Time `gorm:"column:deleted_by_sender" json:"deletedBySender"`
	DeletedByRecipient *wireclock.Time `gorm:"column:deleted_by_recipient" json:"deletedByRecipient"`
}

func (Message) TableName() string { return "messages" }

// VisibleTo reports whether the actor still sees the message, i.e. that
// actor's deletion timestamp is unset. Non-participants see nothing.
func (m *Message) VisibleTo(actorID int64) bool {
	if actorID == m.SenderID && m.DeletedBySender == nil {
		return true
	}
	if actorID == m.RecipientID && m.DeletedByRecipient == nil {
		return true
	}
	return false
}
