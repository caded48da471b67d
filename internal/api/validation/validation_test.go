package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daap14/authprofile/internal/api/validation"
)

func fields(errs []validation.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateSignupRequest(t *testing.T) {
	tests := []struct {
		name   string
		req    validation.SignupRequest
		fields []string
	}{
		{
			name:   "valid",
			req:    validation.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "secret123"},
			fields: []string{},
		},
		{
			name:   "all missing",
			req:    validation.SignupRequest{},
			fields: []string{"email", "name", "password"},
		},
		{
			name:   "bad email",
			req:    validation.SignupRequest{Name: "Alice", Email: "not-an-email", Password: "secret123"},
			fields: []string{"email"},
		},
		{
			name:   "name too long",
			req:    validation.SignupRequest{Name: strings.Repeat("n", 256), Email: "a@x.com", Password: "secret123"},
			fields: []string{"name"},
		},
		{
			// The 72-byte ceiling is reported by the hasher, not here.
			name:   "long password passes validation",
			req:    validation.SignupRequest{Name: "Alice", Email: "a@x.com", Password: strings.Repeat("p", 100)},
			fields: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateSignupRequest(tt.req)
			assert.Equal(t, tt.fields, fields(errs))
		})
	}
}

func TestValidateSignupRequest_Message(t *testing.T) {
	errs := validation.ValidateSignupRequest(validation.SignupRequest{Email: "a@x.com", Password: "p"})

	assert.Equal(t, []validation.FieldError{{Field: "name", Message: "name cannot be blank"}}, errs)
}

func TestValidateLoginRequest(t *testing.T) {
	assert.Empty(t, validation.ValidateLoginRequest(validation.LoginRequest{Email: "a@x.com", Password: "p"}))
	assert.Equal(t, []string{"email", "password"}, fields(validation.ValidateLoginRequest(validation.LoginRequest{})))
}

func TestValidateUpdateProfileRequest(t *testing.T) {
	name := "Alice"
	blank := ""
	long := strings.Repeat("n", 256)

	assert.Empty(t, validation.ValidateUpdateProfileRequest(validation.UpdateProfileRequest{}))
	assert.Empty(t, validation.ValidateUpdateProfileRequest(validation.UpdateProfileRequest{Name: &name}))
	assert.Equal(t, []string{"name"}, fields(validation.ValidateUpdateProfileRequest(validation.UpdateProfileRequest{Name: &blank})))
	assert.Equal(t, []string{"name"}, fields(validation.ValidateUpdateProfileRequest(validation.UpdateProfileRequest{Name: &long})))
}

func TestValidateChatRequest(t *testing.T) {
	assert.Equal(t, []string{"messages"}, fields(validation.ValidateChatRequest(nil)))

	assert.Empty(t, validation.ValidateChatRequest([]validation.ChatMessage{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	}))

	errs := validation.ValidateChatRequest([]validation.ChatMessage{
		{Role: "robot", Content: "hi"},
		{Role: "user", Content: "   "},
	})
	assert.Equal(t, []string{"messages[0].role", "messages[1].content"}, fields(errs))
}

func TestValidateChatRequest_Messages(t *testing.T) {
	errs := validation.ValidateChatRequest([]validation.ChatMessage{
		{Role: "user", Content: "hi"},
		{Role: "", Content: ""},
	})

	assert.Equal(t, []validation.FieldError{
		{Field: "messages[1].content", Message: "content cannot be blank"},
		{Field: "messages[1].role", Message: "role cannot be blank"},
	}, errs)
}
