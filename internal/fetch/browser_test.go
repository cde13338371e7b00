package fetch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestBrowserFetch_UsesDefaultWait(t *testing.T) {
	var gotWait time.Duration
	b := &Browser{
		render: func(ctx context.Context, url string, wait time.Duration) (string, error) {
			gotWait = wait
			return "<html><body>rendered</body></html>", nil
		},
	}

	body, ct, err := b.Fetch(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotWait != renderWait {
		t.Fatalf("expected default wait %v, got %v", renderWait, gotWait)
	}
	if string(body) != "<html><body>rendered</body></html>" {
		t.Fatalf("unexpected body %q", body)
	}
	if !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
}

func TestBrowserFetch_WaitOverride(t *testing.T) {
	var gotWait time.Duration
	b := &Browser{
		Wait: 250 * time.Millisecond,
		render: func(ctx context.Context, url string, wait time.Duration) (string, error) {
			gotWait = wait
			return "<html></html>", nil
		},
	}

	if _, _, err := b.Fetch(context.Background(), "https://example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotWait != 250*time.Millisecond {
		t.Fatalf("expected overridden wait, got %v", gotWait)
	}
}

func TestBrowserFetch_WrapsRenderErrors(t *testing.T) {
	renderErr := errors.New("chrome failed to start")
	b := &Browser{
		render: func(ctx context.Context, url string, wait time.Duration) (string, error) {
			return "", renderErr
		},
	}

	_, _, err := b.Fetch(context.Background(), "https://spa.example.com")
	if err == nil {
		t.Fatal("expected render error to propagate")
	}
	if !errors.Is(err, renderErr) {
		t.Fatalf("expected wrapped render error, got %v", err)
	}
	if !strings.Contains(err.Error(), "https://spa.example.com") {
		t.Fatalf("expected URL in error, got %v", err)
	}
}
