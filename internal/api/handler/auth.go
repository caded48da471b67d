package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daap14/authprofile/internal/api/middleware"
	"github.com/daap14/authprofile/internal/api/response"
	"github.com/daap14/authprofile/internal/api/validation"
	"github.com/daap14/authprofile/internal/auth"
)

const maxBodyBytes = 1 << 20

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	Role        string `json:"role"`
}

// AuthHandler handles the public signup and login endpoints.
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidJSON, "Request body must be valid JSON", requestID)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	fieldErrors := validation.ValidateSignupRequest(validation.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Input validation failed", fieldErrors, requestID)
		return
	}

	u, err := h.authService.Signup(r.Context(), req.Name, req.Email, req.Password, auth.RoleUser)
	if err != nil {
		writeSignupError(w, err, requestID)
		return
	}

	response.Success(w, http.StatusOK, signupResponse{
		Message: "Signup successful",
		UserID:  u.ID,
	}, requestID)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidJSON, "Request body must be valid JSON", requestID)
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	fieldErrors := validation.ValidateLoginRequest(validation.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Input validation failed", fieldErrors, requestID)
		return
	}

	u, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Err(w, http.StatusUnauthorized, response.CodeInvalidCredentials, "Invalid credentials", requestID)
			return
		}
		slog.Error("failed to log in", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, response.CodeInternal, "Failed to log in", requestID)
		return
	}

	token, err := h.authService.IssueToken(u)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, response.CodeInternal, "Failed to log in", requestID)
		return
	}

	response.Success(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        u.Role,
	}, requestID)
}

// writeSignupError maps account-creation errors shared by signup and admin provisioning.
func writeSignupError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, auth.ErrEmailAlreadyRegistered):
		response.Err(w, http.StatusBadRequest, response.CodeEmailAlreadyRegistered, "Email already registered", requestID)
	case errors.Is(err, auth.ErrPasswordTooLong):
		response.Err(w, http.StatusBadRequest, response.CodePasswordTooLong, "Password too long (max 72 bytes)", requestID)
	default:
		slog.Error("failed to create user", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, response.CodeInternal, "Failed to create user", requestID)
	}
}
