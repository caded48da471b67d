package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daap14/authprofile/internal/api/handler"
	"github.com/daap14/authprofile/internal/auth"
)

func TestDevHandler_CreateAdmin(t *testing.T) {
	svc, _ := setupAuthService(t)
	h := handler.NewDevHandler(svc, handler.DevAdmin{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "Admin@12345",
	})

	w := httptest.NewRecorder()
	h.CreateAdmin(w, httptest.NewRequest(http.MethodPost, "/dev/create-admin", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := responseData(t, w)
	assert.Equal(t, "admin@example.com", data["email"])
	assert.Equal(t, auth.RoleAdmin, data["role"])
	assert.Equal(t, float64(1), data["id"])

	u, err := svc.Login(t.Context(), "admin@example.com", "Admin@12345")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, u.Role)

	// A second call conflicts with the existing admin.
	w = httptest.NewRecorder()
	h.CreateAdmin(w, httptest.NewRequest(http.MethodPost, "/dev/create-admin", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMAIL_ALREADY_REGISTERED", errorCode(t, w))
}

func TestDevHandler_CreateAdmin_PasswordTooLong(t *testing.T) {
	svc, _ := setupAuthService(t)
	h := handler.NewDevHandler(svc, handler.DevAdmin{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: strings.Repeat("x", 80),
	})

	w := httptest.NewRecorder()
	h.CreateAdmin(w, httptest.NewRequest(http.MethodPost, "/dev/create-admin", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PASSWORD_TOO_LONG", errorCode(t, w))
}
