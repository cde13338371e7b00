package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic calls the Anthropic Messages API.
type Anthropic struct {
	client anthropic.Client
}

// NewAnthropic builds a Messages API client. baseURL is optional and
// overrides the public endpoint, which is how gateways and the local stub
// are reached. httpClient is optional too; pass nil for the default.
func NewAnthropic(apiKey, baseURL string, httpClient *http.Client) *Anthropic {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &Anthropic{client: anthropic.NewClient(opts...)}
}

// Complete sends a single user message and returns the text of the first
// content segment. Responses whose first segment is not text, or that carry
// no segments at all, are reported as errors rather than silently coerced.
func (a *Anthropic) Complete(ctx context.Context, req Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", &APIError{Provider: "anthropic", Err: err}
	}
	if len(msg.Content) == 0 {
		return "", &APIError{Provider: "anthropic", Err: ErrNoContent}
	}
	block, ok := msg.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", &APIError{
			Provider: "anthropic",
			Err:      fmt.Errorf("first content segment is %q, not text", msg.Content[0].Type),
		}
	}
	return block.Text, nil
}
