package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"messaging-api/internal/domain"
	"messaging-api/internal/dto"
	"messaging-api/internal/service"
)

type AuthHandlers struct {
	auth service.AuthService
}

func NewAuthHandlers(auth service.AuthService) *AuthHandlers {
	return &AuthHandlers{auth: auth}
}

func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}

	res, err := h.auth.Login(r.Context(), req)
	if err != nil {
		// Unknown username is a client mistake here, not a 404.
		if errors.Is(err, domain.ErrUserNotFound) {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "Bad request"})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
