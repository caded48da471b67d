package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daap14/authprofile/internal/api/handler"
)

// mockPinger implements handler.DBPinger for testing.
type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error {
	return m.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name          string
		pinger        handler.DBPinger
		wantStatus    string
		wantConnected bool
	}{
		{"healthy", &mockPinger{}, "healthy", true},
		{"database unreachable", &mockPinger{err: errors.New("connection refused")}, "degraded", false},
		{"no database", nil, "degraded", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHealthHandler(tt.pinger, "0.1.0")

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			env := parseResponse(t, w)
			assert.Nil(t, env["error"])
			assert.NotNil(t, env["meta"])

			data := env["data"].(map[string]interface{})
			assert.Equal(t, tt.wantStatus, data["status"])
			assert.Equal(t, "0.1.0", data["version"])
			db := data["database"].(map[string]interface{})
			assert.Equal(t, tt.wantConnected, db["connected"])
		})
	}
}
