package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/damer179/SummarizeSite/internal/fetch"
	"github.com/damer179/SummarizeSite/internal/llm"
	"github.com/damer179/SummarizeSite/internal/summary"
	"github.com/damer179/SummarizeSite/internal/website"
)

// App wires the page extractor and the summary requester for one run.
type App struct {
	cfg       Config
	extractor pageExtractor
	requester summaryRequester
	out       io.Writer
}

// The two pipeline stages, narrowed to what Run needs so tests can
// substitute either side.
type pageExtractor interface {
	Extract(ctx context.Context, rawURL string) (website.Page, error)
}

type summaryRequester interface {
	Summarize(ctx context.Context, page website.Page) (string, error)
}

// New assembles the pipeline for cfg: a static fetcher with a headless
// browser fallback, feeding the configured text generation backend.
func New(ctx context.Context, cfg Config) (*App, error) {
	client, err := newLLMClient(cfg)
	if err != nil {
		return nil, err
	}
	return &App{
		cfg: cfg,
		extractor: &website.Extractor{
			Static:  &fetch.Static{},
			Dynamic: &fetch.Browser{},
		},
		requester: &summary.Requester{
			Client:    client,
			Model:     cfg.LLMModel,
			MaxTokens: cfg.MaxTokens,
		},
		out: os.Stdout,
	}, nil
}

func newLLMClient(cfg Config) (llm.Client, error) {
	httpClient := newLLMHTTPClient()
	switch cfg.Provider {
	case ProviderAnthropic, "":
		return llm.NewAnthropic(cfg.LLMAPIKey, cfg.LLMBaseURL, httpClient), nil
	case ProviderOpenAI:
		return llm.NewOpenAI(cfg.LLMAPIKey, cfg.LLMBaseURL, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

func (a *App) Close() {
	// nothing yet
}

// Run executes one URL-to-summary pipeline. The summary goes to the
// configured writer (stdout in normal runs) and optionally to files.
func (a *App) Run(ctx context.Context) error {
	page, err := a.extractor.Extract(ctx, a.cfg.URL)
	if err != nil {
		return err
	}
	log.Debug().
		Str("url", page.URL).
		Str("title", page.Title).
		Int("chars", len(page.Text)).
		Msg("extracted page")

	if a.cfg.DryRun {
		// Show what would be sent to the model, without calling it.
		fmt.Fprintf(a.out, "Title: %s\nURL: %s\n\n%s\n", page.Title, page.URL, page.Text)
		return nil
	}

	md, err := a.requester.Summarize(ctx, page)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, md)

	if a.cfg.OutputPath != "" {
		if err := os.WriteFile(a.cfg.OutputPath, []byte(md+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPath).Msg("wrote summary")
	}
	if a.cfg.OutputPDFPath != "" {
		if err := writeSummaryPDF(md, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote summary pdf")
	}
	return nil
}
