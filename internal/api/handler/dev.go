package handler

import (
	"net/http"

	"github.com/daap14/authprofile/internal/api/middleware"
	"github.com/daap14/authprofile/internal/api/response"
	"github.com/daap14/authprofile/internal/auth"
)

// DevAdmin holds the credentials used by the development admin provisioning route.
type DevAdmin struct {
	Name     string
	Email    string
	Password string
}

type createAdminResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// DevHandler serves development-only bootstrap endpoints. It must not be
// mounted outside the dev environment.
type DevHandler struct {
	authService *auth.Service
	admin       DevAdmin
}

// NewDevHandler creates a new DevHandler.
func NewDevHandler(authService *auth.Service, admin DevAdmin) *DevHandler {
	return &DevHandler{authService: authService, admin: admin}
}

// CreateAdmin handles POST /dev/create-admin.
func (h *DevHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	u, err := h.authService.ProvisionAdmin(r.Context(), h.admin.Name, h.admin.Email, h.admin.Password)
	if err != nil {
		writeSignupError(w, err, requestID)
		return
	}

	response.Success(w, http.StatusOK, createAdminResponse{
		Message: "Admin created",
		ID:      u.ID,
		Email:   u.Email,
		Role:    u.Role,
	}, requestID)
}
