package app

import (
	"os"
	"strconv"
	"strings"

	"github.com/damer179/SummarizeSite/internal/summary"
)

// apiKeyPlaceholder stands in for a missing credential so that the failure
// surfaces as an authentication error from the backend instead of an error
// at startup.
const apiKeyPlaceholder = "your-key-if-not-using-env"

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Provider == "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = apiKeyFromEnv(cfg.Provider)
	}
	if cfg.MaxTokens == 0 {
		if s := strings.TrimSpace(os.Getenv("MAX_TOKENS")); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				cfg.MaxTokens = n
			}
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.DryRun, "DRY_RUN")
	setBool(&cfg.Verbose, "VERBOSE")
}

// apiKeyFromEnv resolves the credential for the selected provider, with
// LLM_API_KEY as the provider-agnostic fallback.
func apiKeyFromEnv(provider string) string {
	var v string
	switch provider {
	case ProviderOpenAI:
		v = os.Getenv("OPENAI_API_KEY")
	default:
		v = os.Getenv("ANTHROPIC_API_KEY")
	}
	if v == "" {
		v = os.Getenv("LLM_API_KEY")
	}
	return v
}

// ApplyDefaults fills the remaining unset fields with the stock values:
// the Anthropic provider, its default model and token cap, and the
// placeholder credential for requests expected to fail downstream.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderAnthropic
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = summary.DefaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = summary.DefaultMaxTokens
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = apiKeyPlaceholder
	}
}
