package website

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/damer179/SummarizeSite/internal/extract"
	"github.com/damer179/SummarizeSite/internal/fetch"
)

// Page is the extracted content of a single web page, ready to be framed
// into a prompt.
type Page struct {
	// URL is the normalized form actually retrieved.
	URL   string
	Title string
	Text  string
}

// FetchError reports that both retrieval strategies failed for a URL. It
// carries both causes so callers can tell a DNS failure apart from a
// browser that never launched.
type FetchError struct {
	URL     string
	Static  error
	Dynamic error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: static: %v; dynamic: %v", e.URL, e.Static, e.Dynamic)
}

func (e *FetchError) Unwrap() []error { return []error{e.Static, e.Dynamic} }

// NormalizeURL prepends the secure scheme to bare host names so that
// "example.com" is retrieved as "https://example.com". URLs that already
// carry an http or https prefix pass through untouched.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// Extractor turns a URL into a Page. The static strategy runs first; only
// a transport-level failure there triggers the dynamic browser strategy,
// and the fallback happens at most once per call. Whichever strategy wins,
// the body is parsed a single time.
type Extractor struct {
	Static  fetch.Fetcher
	Dynamic fetch.Fetcher
}

// Extract normalizes rawURL, retrieves the page and reduces it to its
// title and visible text.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (Page, error) {
	if e.Static == nil || e.Dynamic == nil {
		return Page{}, errors.New("extractor not configured")
	}
	u := NormalizeURL(rawURL)

	body, contentType, serr := e.Static.Fetch(ctx, u)
	if serr != nil {
		log.Warn().Err(serr).Str("url", u).Msg("static retrieval failed, rendering with headless browser")
		var derr error
		body, contentType, derr = e.Dynamic.Fetch(ctx, u)
		if derr != nil {
			return Page{}, &FetchError{URL: u, Static: serr, Dynamic: derr}
		}
	}

	doc, err := extract.FromHTML(body, contentType)
	if err != nil {
		return Page{}, fmt.Errorf("process %s: %w", u, err)
	}
	return Page{URL: u, Title: doc.Title, Text: doc.Text}, nil
}
