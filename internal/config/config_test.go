package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newTestViper())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.App.AppName != DefaultAppName {
		t.Fatalf("unexpected app name %q", cfg.App.AppName)
	}
	if cfg.App.HTTPPort != DefaultHTTPPort {
		t.Fatalf("unexpected port %q", cfg.App.HTTPPort)
	}
	if cfg.AI.Provider != "openai" {
		t.Fatalf("unexpected provider %q", cfg.AI.Provider)
	}
	if cfg.AI.FeedbackTemperature != 0.7 {
		t.Fatalf("unexpected temperature %v", cfg.AI.FeedbackTemperature)
	}
	if cfg.AI.FeedbackMaxTokens != 1000 {
		t.Fatalf("unexpected max tokens %d", cfg.AI.FeedbackMaxTokens)
	}
	if cfg.AI.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.AI.RequestTimeout)
	}
	if len(cfg.CORS.AllowOrigins) != 1 || cfg.CORS.AllowOrigins[0] != "*" {
		t.Fatalf("unexpected origins %#v", cfg.CORS.AllowOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	v := newTestViper()
	v.Set("ai_provider", "GEMINI")
	v.Set("gemini_api_key", " g-key ")
	v.Set("ai_request_timeout", "5s")
	v.Set("cors_allow_origins", "https://a.example, ,https://b.example")

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.AI.Provider != "gemini" {
		t.Fatalf("unexpected provider %q", cfg.AI.Provider)
	}
	if cfg.AI.APIKey() != "g-key" {
		t.Fatalf("unexpected api key %q", cfg.AI.APIKey())
	}
	if cfg.AI.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.AI.RequestTimeout)
	}
	if len(cfg.CORS.AllowOrigins) != 2 || cfg.CORS.AllowOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %#v", cfg.CORS.AllowOrigins)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	v := newTestViper()
	v.Set("http_port", "  ")

	_, err := Load(v)
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]any{
		"ai_provider":          "anthropic",
		"ai_request_timeout":   "0s",
		"feedback_max_tokens":  0,
		"feedback_temperature": 3.5,
		"embedding_dimensions": -1,
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			v := newTestViper()
			v.Set(key, val)
			if _, err := Load(v); !errors.Is(err, errInvalidConfig) {
				t.Fatalf("expected errInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNew_ReadsEnvFile(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "service.env")
	if err := os.WriteFile(path, []byte("HTTP_PORT=9100\nOPENAI_API_KEY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	v, err := New(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.HTTPPort != "9100" {
		t.Fatalf("expected port from file, got %q", cfg.App.HTTPPort)
	}
	if cfg.AI.OpenAIAPIKey != "from-file" {
		t.Fatalf("expected api key from file, got %q", cfg.AI.OpenAIAPIKey)
	}
}

func TestNew_MissingFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
