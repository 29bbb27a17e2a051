package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		payload      any
		expectedBody string
	}{
		{
			name:         "Object payload",
			code:         http.StatusOK,
			payload:      map[string]int64{"balance": 45},
			expectedBody: `{"balance":45}`,
		},
		{
			name:         "No content has no body",
			code:         http.StatusNoContent,
			payload:      map[string]string{"ignored": "yes"},
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithJSON(w, tt.code, tt.payload)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.expectedBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestRespondWithCode(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithCode(w, http.StatusBadRequest, "InsufficientBalance", "not enough points")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, Response{Error: "InsufficientBalance", Message: "not enough points"}, body)
}

func TestRespondWithDetails(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithDetails(w, http.StatusUnprocessableEntity, "ValidationFailed", map[string]string{"Name": "required"})

	var body Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ValidationFailed", body.Error)
	assert.Equal(t, "required", body.Details["Name"])
}
