package app

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Config holds runtime configuration for a single invocation.
type Config struct {
	// URL is the page to summarize. A bare host is fine; the scheme is
	// normalized before retrieval.
	URL string

	// Output. The summary always goes to stdout; these add file copies.
	OutputPath    string
	OutputPDFPath string

	// LLM
	Provider   string
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string
	MaxTokens  int

	// Behavior
	DryRun  bool
	Verbose bool
}
