package validation

import (
	"regexp"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

var nonBlank = regexp.MustCompile(`\S`)

// ChatMessage mirrors a single message of a chat request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Validate implements ozzo.Validatable.
func (m ChatMessage) Validate() error {
	return ozzo.ValidateStruct(&m,
		ozzo.Field(&m.Role, ozzo.Required, ozzo.In("system", "developer", "user", "assistant")),
		ozzo.Field(&m.Content, ozzo.Required, ozzo.Match(nonBlank).Error("cannot be blank")),
	)
}

type chatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ValidateChatRequest validates an ordered list of chat messages. Errors on
// individual messages are reported as messages[i].field.
func ValidateChatRequest(messages []ChatMessage) []FieldError {
	req := chatRequest{Messages: messages}
	return fieldErrors(ozzo.ValidateStruct(&req,
		ozzo.Field(&req.Messages, ozzo.Required),
	))
}
