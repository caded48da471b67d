package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daap14/authprofile/internal/api/middleware"
	"github.com/daap14/authprofile/internal/api/response"
	"github.com/daap14/authprofile/internal/api/validation"
	"github.com/daap14/authprofile/internal/auth"
)

type updateProfileRequest struct {
	Name *string `json:"name"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(u *auth.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// UserHandler handles profile endpoints for the authenticated principal.
type UserHandler struct {
	authService *auth.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *auth.Service) *UserHandler {
	return &UserHandler{authService: authService}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	principal := middleware.GetPrincipal(r.Context())
	if principal == nil {
		response.Err(w, http.StatusUnauthorized, response.CodeUnauthorized, "Bearer token is required", requestID)
		return
	}

	response.Success(w, http.StatusOK, toUserResponse(principal), requestID)
}

// UpdateMe handles PUT /users/me. Only the display name is mutable.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	principal := middleware.GetPrincipal(r.Context())
	if principal == nil {
		response.Err(w, http.StatusUnauthorized, response.CodeUnauthorized, "Bearer token is required", requestID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidJSON, "Request body must be valid JSON", requestID)
		return
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}

	fieldErrors := validation.ValidateUpdateProfileRequest(validation.UpdateProfileRequest{Name: req.Name})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Input validation failed", fieldErrors, requestID)
		return
	}

	if req.Name == nil {
		response.Success(w, http.StatusOK, toUserResponse(principal), requestID)
		return
	}

	updated, err := h.authService.UpdateName(r.Context(), principal, *req.Name)
	if err != nil {
		slog.Error("failed to update profile", "error", err, "userId", principal.ID, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, response.CodeInternal, "Failed to update profile", requestID)
		return
	}

	response.Success(w, http.StatusOK, toUserResponse(updated), requestID)
}
