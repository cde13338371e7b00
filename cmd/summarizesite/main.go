package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/damer179/SummarizeSite/internal/app"
)

const binaryName = "summarizesite"

// Build metadata populated via -ldflags at build time.
var (
	buildVersion = "0.0.0-dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Conventional dotenv lookup, before any environment variable is read.
	if err := app.LoadEnvFiles(".env"); err != nil {
		log.Warn().Err(err).Msg("dotenv load failed")
	}

	var (
		outputPath    string
		outputPDFPath string
		configPath    string
		provider      string
		llmBaseURL    string
		llmModel      string
		llmKey        string
		maxTokens     int
		dryRun        bool
		verbose       bool
		showVersion   bool
	)

	flag.StringVar(&outputPath, "output", "", "Also write the Markdown summary to this file")
	flag.StringVar(&outputPDFPath, "output.pdf", "", "Also render the summary to a PDF at this path")
	flag.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	flag.StringVar(&provider, "llm.provider", "", "Text generation backend: anthropic or openai (default anthropic)")
	flag.StringVar(&llmBaseURL, "llm.base", "", "Backend base URL override, for gateways and local stubs")
	flag.StringVar(&llmModel, "llm.model", "", "Model name (default claude-3-opus-20240229)")
	flag.StringVar(&llmKey, "llm.key", "", "API key; defaults to ANTHROPIC_API_KEY or LLM_API_KEY")
	flag.IntVar(&maxTokens, "max.tokens", 0, "Maximum output tokens for the summary (default 1000)")
	flag.BoolVar(&dryRun, "dry-run", false, "Fetch and extract without calling the model")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if showVersion {
		fmt.Println(versionString())
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	cfg := app.Config{
		URL:           flag.Arg(0),
		OutputPath:    outputPath,
		OutputPDFPath: outputPDFPath,
		Provider:      provider,
		LLMBaseURL:    llmBaseURL,
		LLMModel:      llmModel,
		LLMAPIKey:     llmKey,
		MaxTokens:     maxTokens,
		DryRun:        dryRun,
		Verbose:       verbose,
	}

	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyDefaults(&cfg)
	if err := app.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}

func versionString() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", binaryName, buildVersion, buildCommit, buildDate)
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: %s [flags] <url>\n\n", binaryName)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s cnn.com\n", binaryName)
	fmt.Fprintf(w, "  %s https://www.bbc.com\n", binaryName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	flag.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: Make sure you have set the ANTHROPIC_API_KEY environment variable")
}
