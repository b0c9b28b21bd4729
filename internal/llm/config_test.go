package llm

import (
	"errors"
	"testing"
)

func TestConfigValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	var noCred *ErrNoCredential
	if !errors.As(err, &noCred) {
		t.Fatalf("expected ErrNoCredential, got %T (%v)", err, err)
	}
	if noCred.Provider != "gemini" {
		t.Errorf("provider = %q, want %q", noCred.Provider, "gemini")
	}
}

func TestConfigValidate_PlaceholderKey(t *testing.T) {
	// A key still holding the .env template's placeholder must behave
	// exactly like a missing one.
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	cfg.Gemini.APIKey = "your-google-api-key-here"

	var noCred *ErrNoCredential
	if err := cfg.Validate(); !errors.As(err, &noCred) {
		t.Fatalf("expected ErrNoCredential for placeholder key, got %v", err)
	}
}

func TestConfigValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("LEXIZ_LLM_PROVIDER", "openai")
	t.Setenv("LEXIZ_OPENAI_API_KEY", "sk-test")
	t.Setenv("LEXIZ_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want %q", cfg.Provider, "openai")
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q, want %q", cfg.OpenAI.APIKey, "sk-test")
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want %q", cfg.OpenAI.Model, "gpt-4o")
	}
}

func TestDiscoverConfig_SkipsPlaceholder(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "your-google-api-key-here")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-real")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a provider to be discovered")
	}
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want %q", cfg.Provider, "openai")
	}
}
