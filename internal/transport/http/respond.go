package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"messaging-api/internal/domain"
	"messaging-api/internal/netutil"
	impl "messaging-api/internal/service/impl"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

type validationBody struct {
	Status string            `json:"status"`
	Errors map[string]string `json:"errors"`
}

// writeError maps service and store errors onto the wire taxonomy:
// validation and duplicate input 400, missing entities 404, credential
// failures 401, everything else a generic 500. Internal detail never
// reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, validationBody{Status: "error", Errors: ve.Fields})
	case errors.Is(err, domain.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "User not found"})
	case errors.Is(err, domain.ErrMessageNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Message not found"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Invalid credentials"})
	case errors.Is(err, impl.ErrEmptyCredential), errors.Is(err, impl.ErrEmptyPassword):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal Server Error"})
	}
}

// clientIP yields the canonical peer address; chi's RealIP middleware has
// already folded proxy headers into RemoteAddr.
func clientIP(r *http.Request) string {
	if normalized, ok := netutil.NormalizeIP(r.RemoteAddr); ok {
		return normalized
	}
	return r.RemoteAddr
}
