package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daap14/authprofile/internal/api/middleware"
	"github.com/daap14/authprofile/internal/api/response"
	"github.com/daap14/authprofile/internal/api/validation"
	"github.com/daap14/authprofile/internal/chat"
)

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler proxies conversations to the upstream language model.
type ChatHandler struct {
	replier chat.Replier
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(replier chat.Replier) *ChatHandler {
	return &ChatHandler{replier: replier}
}

// Reply handles POST /chat.
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidJSON, "Request body must be valid JSON", requestID)
		return
	}

	msgs := make([]validation.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, validation.ChatMessage{Role: m.Role, Content: m.Content})
	}
	if fieldErrors := validation.ValidateChatRequest(msgs); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Input validation failed", fieldErrors, requestID)
		return
	}

	reply, err := h.replier.Reply(r.Context(), req.Messages)
	if err != nil {
		if errors.Is(err, chat.ErrQuotaExceeded) {
			slog.Warn("chat upstream quota exhausted", "error", err, "requestId", requestID)
			response.Err(w, http.StatusPaymentRequired, response.CodeQuotaExceeded,
				"Chat API quota/billing is not available for this key. Enable billing or add credits, then try again.", requestID)
			return
		}
		slog.Error("chat upstream failed", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, response.CodeUpstream, "Chat service unavailable", requestID)
		return
	}

	response.Success(w, http.StatusOK, chatResponse{Reply: reply}, requestID)
}
