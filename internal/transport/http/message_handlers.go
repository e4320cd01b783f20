package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"messaging-api/internal/dto"
	"messaging-api/internal/observability/metrics"
	obsmw "messaging-api/internal/observability/middleware"
	"messaging-api/internal/service"
	impl "messaging-api/internal/service/impl"

	"github.com/go-chi/chi/v5"
)

type MessageHandlers struct {
	messages service.MessageService
}

func NewMessageHandlers(messages service.MessageService) *MessageHandlers {
	return &MessageHandlers{messages: messages}
}

func (h *MessageHandlers) Send(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())

	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.MessagesSentTotal.WithLabelValues("failure").Inc()
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}

	msg, err := h.messages.Send(r.Context(), req, clientIP(r))
	if err != nil {
		metrics.MessagesSentTotal.WithLabelValues("failure").Inc()
		slog.Warn("message send failed", "error", err, "request_id", reqID)
		writeError(w, err)
		return
	}
	metrics.MessagesSentTotal.WithLabelValues("success").Inc()
	slog.Info("message sent", "message_id", msg.ID, "sender_id", msg.SenderID, "recipient_id", msg.RecipientID, "request_id", reqID)
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}

	msg, err := h.messages.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *MessageHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())

	var req dto.ReadMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}

	if err := h.messages.MarkRead(r.Context(), req, clientIP(r)); err != nil {
		slog.Warn("mark read failed", "error", err, "message_id", req.ID, "request_id", reqID)
		writeError(w, err)
		return
	}
	slog.Info("message read", "message_id", req.ID, "request_id", reqID)
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "Message read successfully"})
}

// Delete handles both POST /messages/delete and DELETE /messages/{id}; the
// acting party always comes from the body's deletedBy field.
func (h *MessageHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())

	var req dto.DeleteMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}
	if req.ID == 0 {
		if id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err == nil {
			req.ID = id
		}
	}

	status, err := h.messages.Delete(r.Context(), req)
	if err != nil {
		slog.Warn("message delete failed", "error", err, "message_id", req.ID, "request_id", reqID)
		writeError(w, err)
		return
	}
	switch status {
	case impl.StatusDeletedBySender:
		metrics.MessagesDeletedTotal.WithLabelValues("sender").Inc()
	case impl.StatusDeletedByRecipient:
		metrics.MessagesDeletedTotal.WithLabelValues("recipient").Inc()
	default:
		metrics.MessagesDeletedTotal.WithLabelValues("none").Inc()
	}
	slog.Info("message delete processed", "message_id", req.ID, "actor_id", req.DeletedBy, "request_id", reqID)
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: status})
}
