package llm

import (
	"context"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI calls any OpenAI-compatible chat completion endpoint, which keeps
// self-hosted backends (vLLM, LiteLLM, Ollama and similar) usable without
// touching the rest of the pipeline.
type OpenAI struct {
	client *openai.Client
}

// NewOpenAI builds a chat completion client. baseURL is optional and points
// the client at a compatible server; it should include the /v1 suffix.
func NewOpenAI(apiKey, baseURL string, httpClient *http.Client) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg)}
}

// Complete sends the request as a system+user exchange and returns the
// first choice's message content.
func (o *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", &APIError{Provider: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &APIError{Provider: "openai", Err: ErrNoContent}
	}
	return resp.Choices[0].Message.Content, nil
}
