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

	"github.com/go-chi/chi/v5"
)

type UserHandlers struct {
	users service.UserService
}

func NewUserHandlers(users service.UserService) *UserHandlers {
	return &UserHandlers{users: users}
}

func (h *UserHandlers) Register(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())

	var req dto.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.UsersCreatedTotal.WithLabelValues("failure").Inc()
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}

	user, err := h.users.Register(r.Context(), req)
	if err != nil {
		metrics.UsersCreatedTotal.WithLabelValues("failure").Inc()
		slog.Warn("user registration failed", "error", err, "request_id", reqID)
		writeError(w, err)
		return
	}
	metrics.UsersCreatedTotal.WithLabelValues("success").Inc()
	slog.Info("user registered", "user_id", user.ID, "username", user.Username, "request_id", reqID)
	writeJSON(w, http.StatusCreated, user)
}

// List serves both GET /users and GET /users/{limit}/{page}; absent or
// invalid path values fall back to the defaults.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	limitRaw := chi.URLParam(r, "limit")
	pageRaw := chi.URLParam(r, "page")

	users, err := h.users.List(r.Context(), limitRaw, pageRaw)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")
	user, err := h.users.Get(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}

	user, err := h.users.Update(r.Context(), req)
	if err != nil {
		slog.Warn("user update failed", "error", err, "user_id", req.ID, "request_id", reqID)
		writeError(w, err)
		return
	}
	slog.Info("user updated", "user_id", user.ID, "request_id", reqID)
	writeJSON(w, http.StatusOK, dto.UpdateUserResponse{Status: "success", User: user})
}

func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}

	user, err := h.users.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	slog.Info("user deleted", "user_id", id, "request_id", reqID)
	writeJSON(w, http.StatusOK, user)
}
