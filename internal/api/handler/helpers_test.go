package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/daap14/authprofile/internal/auth"
	"github.com/daap14/authprofile/internal/auth/authtest"
)

const testBcryptCost = 4

func setupAuthService(t *testing.T) (*auth.Service, *authtest.MemoryRepository) {
	t.Helper()

	repo := authtest.NewMemoryRepository()
	tokens := auth.NewTokenCodec([]byte("handler-secret"), "handler-test", time.Hour)
	return auth.NewService(repo, auth.NewHasher(testBcryptCost), tokens), repo
}

func createUser(t *testing.T, svc *auth.Service, name, email, password, role string) *auth.User {
	t.Helper()

	u, err := svc.Signup(context.Background(), name, email, password, role)
	require.NoError(t, err)
	return u
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := parseResponse(t, w)
	apiErr, ok := env["error"].(map[string]interface{})
	require.True(t, ok, "expected an error envelope, got %s", w.Body.String())
	return apiErr["code"].(string)
}

func responseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	env := parseResponse(t, w)
	data, ok := env["data"].(map[string]interface{})
	require.True(t, ok, "expected a data envelope, got %s", w.Body.String())
	return data
}
