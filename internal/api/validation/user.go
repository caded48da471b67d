package validation

import ozzo "github.com/go-ozzo/ozzo-validation"

// UpdateProfileRequest mirrors the fields needed for profile update validation.
type UpdateProfileRequest struct {
	Name *string `json:"name"`
}

// ValidateUpdateProfileRequest validates a profile update. A nil name means
// "leave unchanged"; a present one must be non-blank.
func ValidateUpdateProfileRequest(req UpdateProfileRequest) []FieldError {
	return fieldErrors(ozzo.ValidateStruct(&req,
		ozzo.Field(&req.Name, ozzo.NilOrNotEmpty, ozzo.Length(1, 255)),
	))
}
