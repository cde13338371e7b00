package llm

import (
	"context"
	"errors"
	"fmt"
)

// Request carries one prompt exchange to a text generation backend. The
// system message frames the assistant role; the prompt holds the actual
// page content to work on.
type Request struct {
	Model     string
	MaxTokens int
	System    string
	Prompt    string
}

// Client is the minimal interface core logic needs to call a chat model.
// It is intentionally a single method so that any hosted or local backend
// can be adapted, and so tests can substitute a canned implementation.
type Client interface {
	// Complete sends req and returns the generated text of the first
	// content segment of the response.
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrNoContent indicates the backend answered without any usable content
// segment. Callers can match it with errors.Is to distinguish an empty
// generation from a transport or authentication failure.
var ErrNoContent = errors.New("response contained no content")

// APIError wraps any failure reported while talking to a text generation
// backend, tagged with the provider that produced it.
type APIError struct {
	Provider string
	Err      error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api: %v", e.Provider, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }
