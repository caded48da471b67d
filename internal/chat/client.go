// Package chat proxies chat completions to the OpenAI Responses API.
package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

var (
	// ErrQuotaExceeded is returned when the upstream account has no quota or billing.
	ErrQuotaExceeded = errors.New("upstream quota exceeded")

	// ErrUpstream wraps every other upstream failure.
	ErrUpstream = errors.New("upstream chat request failed")
)

// Message is a single role-tagged chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Replier produces a reply for an ordered conversation.
type Replier interface {
	Reply(ctx context.Context, messages []Message) (string, error)
}

// Client calls the Responses endpoint through the OpenAI SDK.
type Client struct {
	sdk   openai.Client
	model string
}

// NewClient creates a Client. Every upstream attempt is bounded by timeout,
// which must be positive. Extra options are applied after the defaults.
func NewClient(baseURL, apiKey, model string, timeout time.Duration, opts ...option.RequestOption) (*Client, error) {
	if timeout <= 0 {
		return nil, fmt.Errorf("chat timeout must be positive, got %s", timeout)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(strings.TrimRight(baseURL, "/")+"/"))
	}
	clientOpts = append(clientOpts, opts...)

	return &Client{
		sdk:   openai.NewClient(clientOpts...),
		model: model,
	}, nil
}

// Reply sends messages to the model and returns the generated text.
func (c *Client) Reply(ctx context.Context, messages []Message) (string, error) {
	input := make(responses.ResponseInputParam, 0, len(messages))
	for _, m := range messages {
		input = append(input, responses.ResponseInputItemUnionParam{
			OfMessage: &responses.EasyInputMessageParam{
				Role:    responses.EasyInputMessageRole(m.Role),
				Content: responses.EasyInputMessageContentUnionParam{OfString: openai.String(m.Content)},
			},
		})
	}

	resp, err := c.sdk.Responses.New(ctx, responses.ResponseNewParams{
		Model: c.model,
		Input: responses.ResponseNewParamsInputUnion{OfInputItemList: input},
	})
	if err != nil {
		return "", classify(err)
	}

	return resp.OutputText(), nil
}

// classify maps quota and billing failures to ErrQuotaExceeded and anything
// else to ErrUpstream.
func classify(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if apiErr.StatusCode == http.StatusPaymentRequired ||
		apiErr.Code == "insufficient_quota" ||
		strings.Contains(apiErr.RawJSON(), "insufficient_quota") ||
		strings.Contains(apiErr.RawJSON(), "exceeded your current quota") {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}

	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
