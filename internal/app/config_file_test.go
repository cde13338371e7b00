package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output: summary.md
outputPDF: summary.pdf
llm:
  provider: openai
  base: http://localhost:8081/v1
  model: local-model
  key: sk-test
  maxTokens: 750
dryRun: true
verbose: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Output != "summary.md" || fc.OutputPDF != "summary.pdf" {
		t.Fatalf("unexpected output settings: %+v", fc)
	}
	if fc.LLM.Provider != "openai" || fc.LLM.BaseURL != "http://localhost:8081/v1" ||
		fc.LLM.Model != "local-model" || fc.LLM.APIKey != "sk-test" || fc.LLM.MaxTokens != 750 {
		t.Fatalf("unexpected llm settings: %+v", fc.LLM)
	}
	if !fc.DryRun || !fc.Verbose {
		t.Fatalf("unexpected behavior flags: %+v", fc)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"output":"s.md","llm":{"model":"claude-3-opus-20240229","maxTokens":1000}}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Output != "s.md" || fc.LLM.Model != "claude-3-opus-20240229" || fc.LLM.MaxTokens != 1000 {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestLoadConfigFile_UnknownExtensionTriesBoth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.conf")
	if err := os.WriteFile(path, []byte("llm:\n  model: m\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.LLM.Model != "m" {
		t.Fatalf("expected yaml fallback to parse, got %+v", fc)
	}
}

func TestApplyFileConfig_FillsOnlyUnset(t *testing.T) {
	cfg := Config{LLMModel: "from-flag", MaxTokens: 256}
	var fc FileConfig
	fc.Output = "from-file.md"
	fc.LLM.Provider = "OpenAI"
	fc.LLM.Model = "from-file"
	fc.LLM.MaxTokens = 999
	fc.Verbose = true

	ApplyFileConfig(&cfg, fc)

	if cfg.OutputPath != "from-file.md" {
		t.Fatalf("OutputPath=%q, want file value", cfg.OutputPath)
	}
	if cfg.Provider != "openai" {
		t.Fatalf("Provider=%q, want lowercased file value", cfg.Provider)
	}
	if cfg.LLMModel != "from-flag" {
		t.Fatalf("LLMModel=%q, expected flag value to win", cfg.LLMModel)
	}
	if cfg.MaxTokens != 256 {
		t.Fatalf("MaxTokens=%d, expected flag value to win", cfg.MaxTokens)
	}
	if !cfg.Verbose {
		t.Fatalf("expected verbose from file")
	}
}

func TestValidateConfig(t *testing.T) {
	valid := Config{
		URL:       "example.com",
		Provider:  ProviderAnthropic,
		LLMModel:  "claude-3-opus-20240229",
		LLMAPIKey: "k",
		MaxTokens: 1000,
	}
	if err := ValidateConfig(valid); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing url", func(c *Config) { c.URL = " " }},
		{"unknown provider", func(c *Config) { c.Provider = "mystery" }},
		{"missing model", func(c *Config) { c.LLMModel = "" }},
		{"zero max tokens", func(c *Config) { c.MaxTokens = 0 }},
	}
	for _, tc := range cases {
		cfg := valid
		tc.mutate(&cfg)
		if err := ValidateConfig(cfg); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
