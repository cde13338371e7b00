package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// renderWait is how long scripts get to settle after navigation before the
// DOM is captured. The wait is fixed rather than event driven; pages that
// keep loading past it are processed from whatever has rendered so far.
const renderWait = 5 * time.Second

// Browser retrieves a page by driving a headless Chrome instance, for sites
// that assemble their content with JavaScript.
type Browser struct {
	// Wait overrides the post-navigation settle time. Zero means the
	// default of five seconds.
	Wait time.Duration

	// render is swapped in tests to avoid launching a real browser.
	render func(ctx context.Context, url string, wait time.Duration) (string, error)
}

// Fetch navigates to url, waits for scripts to settle and returns the
// serialized DOM. The browser process is torn down on every return path.
func (b *Browser) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	wait := b.Wait
	if wait <= 0 {
		wait = renderWait
	}
	render := b.render
	if render == nil {
		render = renderPage
	}
	html, err := render(ctx, url, wait)
	if err != nil {
		return nil, "", fmt.Errorf("render %s: %w", url, err)
	}
	return []byte(html), "text/html; charset=utf-8", nil
}

func renderPage(ctx context.Context, url string, wait time.Duration) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(wait),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
