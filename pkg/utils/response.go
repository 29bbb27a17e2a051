package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Error codes written by the authentication layer.
const (
	CodeUnauthorized = "Unauthorized"
	CodeForbidden    = "Forbidden"
)

// Response is the body of every error answer.
type Response struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if code == http.StatusNoContent {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

// RespondWithCode answers with a machine readable error code and a human message.
func RespondWithCode(w http.ResponseWriter, status int, code, message string) {
	RespondWithJSON(w, status, Response{Error: code, Message: message})
}

func RespondWithDetails(w http.ResponseWriter, status int, code string, details map[string]string) {
	RespondWithJSON(w, status, Response{Error: code, Details: details})
}
