package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Fetcher is one strategy for retrieving the raw HTML of a page. It returns
// the body bytes along with the Content-Type the strategy knows for them,
// so downstream parsing can pick the right character decoder.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (body []byte, contentType string, err error)
}

// Static retrieves a page with a single plain HTTP GET: no custom headers,
// no retries and no per-request deadline beyond what ctx carries.
type Static struct {
	// HTTPClient overrides the default client, which has no timeout.
	HTTPClient *http.Client
}

// Fetch issues the GET and reads the full body. The response status is not
// examined; an error page still carries an HTML body, and only transport
// failures count as a failed static attempt.
func (s *Static) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("new request: %w", err)
	}
	httpClient := s.HTTPClient
	if httpClient == nil {
		httpClient = defaultHTTPClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	log.Debug().Str("url", url).Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("static retrieval")
	return body, resp.Header.Get("Content-Type"), nil
}

// defaultHTTPClient follows redirects and imposes no timeout of its own.
var defaultHTTPClient = &http.Client{}
