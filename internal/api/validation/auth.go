package validation

import (
	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// SignupRequest mirrors the fields needed for signup validation.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateSignupRequest validates the fields of a signup request. Password
// length is not checked here; the hasher owns the 72-byte ceiling.
func ValidateSignupRequest(req SignupRequest) []FieldError {
	return fieldErrors(ozzo.ValidateStruct(&req,
		ozzo.Field(&req.Name, ozzo.Required, ozzo.Length(1, 255)),
		ozzo.Field(&req.Email, ozzo.Required, ozzo.Length(3, 254), is.Email),
		ozzo.Field(&req.Password, ozzo.Required),
	))
}

// LoginRequest mirrors the fields needed for login validation.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLoginRequest validates the fields of a login request.
func ValidateLoginRequest(req LoginRequest) []FieldError {
	return fieldErrors(ozzo.ValidateStruct(&req,
		ozzo.Field(&req.Email, ozzo.Required),
		ozzo.Field(&req.Password, ozzo.Required),
	))
}
