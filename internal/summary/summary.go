package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/damer179/SummarizeSite/internal/llm"
	"github.com/damer179/SummarizeSite/internal/website"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "claude-3-opus-20240229"
	// DefaultMaxTokens bounds the length of a generated summary.
	DefaultMaxTokens = 1000
)

// Requester frames an extracted page into a prompt and asks the text
// generation backend for a Markdown summary. The request is made exactly
// once; transient failures surface to the caller rather than being retried.
type Requester struct {
	Client    llm.Client
	Model     string
	MaxTokens int
}

// Summarize returns the model's Markdown summary for page, verbatim.
func (r *Requester) Summarize(ctx context.Context, page website.Page) (string, error) {
	if r.Client == nil || strings.TrimSpace(r.Model) == "" {
		return "", errors.New("requester not configured")
	}
	maxTokens := r.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	out, err := r.Client.Complete(ctx, llm.Request{
		Model:     r.Model,
		MaxTokens: maxTokens,
		System:    buildSystemMessage(),
		Prompt:    buildUserMessage(page),
	})
	if err != nil {
		return "", fmt.Errorf("summary request: %w", err)
	}
	return out, nil
}

// buildSystemMessage frames the assistant role. The wording steers the
// model away from navigation chrome that survives text extraction.
func buildSystemMessage() string {
	return "You are an assistant that analyzes the contents of a website " +
		"and provides a short summary, ignoring text that might be navigation related. " +
		"Respond in markdown."
}

// buildUserMessage lays out the page for the model: the title woven into
// the instruction, one blank line, then the extracted text untouched.
func buildUserMessage(page website.Page) string {
	var sb strings.Builder
	sb.WriteString("You are looking at a website titled ")
	sb.WriteString(page.Title)
	sb.WriteString(". The contents of this website is as follows; ")
	sb.WriteString("please provide a short summary of this website in markdown. ")
	sb.WriteString("If it includes news or announcements, then summarize these too.")
	sb.WriteString("\n\n")
	sb.WriteString(page.Text)
	return sb.String()
}
