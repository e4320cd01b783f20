package store

import (
	"errors"
	"testing"

	"messaging-api/internal/domain"
	"messaging-api/internal/wireclock"
)

func seedMessage(t *testing.T, st *Store, senderID, recipientID int64) *domain.Message {
	t.Helper()
	msg := &domain.Message{
		SenderID:      senderID,
		RecipientID:   recipientID,
		Subject:       "hello",
		Body:          "first message",
		SentAt:        wireclock.Now(),
		SenderAddress: "10.0.0.5",
	}
	if err := st.Messages().Create(t.Context(), msg); err != nil {
		t.Fatalf("seed message: %v", err)
	}
	return msg
}

func TestMessageCreateAndGet(t *testing.T) {
	st := newTestStore(t)
	alice := seedUser(t, st, "alice", "alice@example.com")
	bob := seedUser(t, st, "bob", "bob@example.com")

	msg := seedMessage(t, st, alice.ID, bob.ID)
	if msg.ID == 0 {
		t.Fatalf("expected generated id")
	}

	got, err := st.Messages().GetByID(t.Context(), msg.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SenderID != alice.ID || got.RecipientID != bob.ID {
		t.Fatalf("wrong endpoints: %+v", got)
	}
	if got.Subject != "hello" || got.Body != "first message" {
		t.Fatalf("wrong content: %+v", got)
	}
	if got.SentAt.IsZero() {
		t.Fatalf("sent_at not persisted")
	}
	if got.ReadAt != nil || got.DeletedBySender != nil || got.DeletedByRecipient != nil {
		t.Fatalf("fresh message carries stamps: %+v", got)
	}
}

func TestMessageGetMissing(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Messages().GetByID(t.Context(), 404); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestMarkReadLastWriteWins(t *testing.T) {
	st := newTestStore(t)
	alice := seedUser(t, st, "alice", "alice@example.com")
	bob := seedUser(t, st, "bob", "bob@example.com")
	msg := seedMessage(t, st, alice.ID, bob.ID)

	first, _ := wireclock.Parse("2025-06-01 08:00:00")
	second, _ := wireclock.Parse("2025-06-01 09:30:00")

	if err := st.Messages().MarkRead(t.Context(), msg.ID, "10.0.0.9", first); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if err := st.Messages().MarkRead(t.Context(), msg.ID, "10.0.0.12", second); err != nil {
		t.Fatalf("second mark: %v", err)
	}

	got, err := st.Messages().GetByID(t.Context(), msg.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ReadAt == nil || !got.ReadAt.Equal(second.Time) {
		t.Fatalf("expected second stamp to win, got %v", got.ReadAt)
	}
	if got.ReaderAddress != "10.0.0.12" {
		t.Fatalf("expected second reader address, got %q", got.ReaderAddress)
	}
}

func TestMarkReadMissing(t *testing.T) {
	st := newTestStore(t)
	if err := st.Messages().MarkRead(t.Context(), 404, "10.0.0.9", wireclock.Now()); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestSoftDelete(t *testing.T) {
	st := newTestStore(t)
	alice := seedUser(t, st, "alice", "alice@example.com")
	bob := seedUser(t, st, "bob", "bob@example.com")

	cases := []struct {
		name                 string
		actor                int64
		bySender, byRecipient bool
	}{
		{"sender", alice.ID, true, false},
		{"recipient", bob.ID, false, true},
		{"stranger", 42, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := seedMessage(t, st, alice.ID, bob.ID)
			bySender, byRecipient, err := st.Messages().SoftDelete(t.Context(), msg.ID, tc.actor, wireclock.Now())
			if err != nil {
				t.Fatalf("soft delete: %v", err)
			}
			if bySender != tc.bySender || byRecipient != tc.byRecipient {
				t.Fatalf("got bySender=%v byRecipient=%v, want %v/%v", bySender, byRecipient, tc.bySender, tc.byRecipient)
			}

			got, err := st.Messages().GetByID(t.Context(), msg.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if (got.DeletedBySender != nil) != tc.bySender {
				t.Fatalf("deleted_by_sender stamp mismatch: %v", got.DeletedBySender)
			}
			if (got.DeletedByRecipient != nil) != tc.byRecipient {
				t.Fatalf("deleted_by_recipient stamp mismatch: %v", got.DeletedByRecipient)
			}
		})
	}
}

func TestSoftDeleteSelfMessage(t *testing.T) {
	st := newTestStore(t)
	alice := seedUser(t, st, "alice", "alice@example.com")
	msg := seedMessage(t, st, alice.ID, alice.ID)

	bySender, byRecipient, err := st.Messages().SoftDelete(t.Context(), msg.ID, alice.ID, wireclock.Now())
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if !bySender || !byRecipient {
		t.Fatalf("self-addressed delete should stamp both sides, got %v/%v", bySender, byRecipient)
	}

	got, _ := st.Messages().GetByID(t.Context(), msg.ID)
	if got.VisibleTo(alice.ID) {
		t.Fatalf("message still visible after both-side delete")
	}
}

func TestSoftDeleteMissing(t *testing.T) {
	st := newTestStore(t)
	if _, _, err := st.Messages().SoftDelete(t.Context(), 404, 1, wireclock.Now()); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestMessageVisibleTo(t *testing.T) {
	st := newTestStore(t)
	alice := seedUser(t, st, "alice", "alice@example.com")
	bob := seedUser(t, st, "bob", "bob@example.com")
	msg := seedMessage(t, st, alice.ID, bob.ID)

	if !msg.VisibleTo(alice.ID) || !msg.VisibleTo(bob.ID) {
		t.Fatalf("fresh message should be visible to both sides")
	}

	if _, _, err := st.Messages().SoftDelete(t.Context(), msg.ID, alice.ID, wireclock.Now()); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	got, _ := st.Messages().GetByID(t.Context(), msg.ID)
	if got.VisibleTo(alice.ID) {
		t.Fatalf("sender still sees deleted message")
	}
	if !got.VisibleTo(bob.ID) {
		t.Fatalf("recipient lost visibility on sender-side delete")
	}
}
