package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"talent-ai/internal/ai"
)

type Config struct {
	App  AppConfig
	Log  LogConfig
	AI   AIConfig
	CORS CORSConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type AIConfig struct {
	Provider string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string

	EmbeddingModel      string
	EmbeddingDimensions int
	FeedbackModel       string
	FeedbackTemperature float64
	FeedbackMaxTokens   int

	RequestTimeout time.Duration
}

// APIKey returns the credential of the selected provider.
func (c AIConfig) APIKey() string {
	if c.Provider == ai.ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

type CORSConfig struct {
	AllowOrigins []string
}

const (
	DefaultAppName  = "Talent Hub AI Service"
	DefaultHTTPPort = "8000"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidConfig      = errors.New("invalid configuration")
)

// SetDefaults registers every key so AutomaticEnv can resolve it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app_name", DefaultAppName)
	v.SetDefault("app_env", "development")
	v.SetDefault("http_port", DefaultHTTPPort)

	v.SetDefault("log_json", false)
	v.SetDefault("log_debug", false)

	v.SetDefault("ai_provider", ai.ProviderOpenAI)
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_base_url", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("embedding_model", "")
	v.SetDefault("embedding_dimensions", 0)
	v.SetDefault("feedback_model", "")
	v.SetDefault("feedback_temperature", 0.7)
	v.SetDefault("feedback_max_tokens", 1000)
	v.SetDefault("ai_request_timeout", 30*time.Second)

	v.SetDefault("cors_allow_origins", "*")
}

// New returns a viper instance reading defaults, the optional config file and
// the process environment, in increasing priority.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	if f := strings.TrimSpace(configFile); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", f, err)
		}
	}

	return v, nil
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, strings.ToUpper(key))
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg.App = AppConfig{
		AppName:     req("app_name"),
		Environment: opt("app_env"),
		HTTPPort:    req("http_port"),
	}

	cfg.Log = LogConfig{
		JSON:  v.GetBool("log_json"),
		Debug: v.GetBool("log_debug"),
	}

	cfg.AI = AIConfig{
		Provider:            strings.ToLower(req("ai_provider")),
		OpenAIAPIKey:        opt("openai_api_key"),
		OpenAIBaseURL:       opt("openai_base_url"),
		GeminiAPIKey:        opt("gemini_api_key"),
		EmbeddingModel:      opt("embedding_model"),
		EmbeddingDimensions: v.GetInt("embedding_dimensions"),
		FeedbackModel:       opt("feedback_model"),
		FeedbackTemperature: v.GetFloat64("feedback_temperature"),
		FeedbackMaxTokens:   v.GetInt("feedback_max_tokens"),
		RequestTimeout:      v.GetDuration("ai_request_timeout"),
	}

	cfg.CORS = CORSConfig{AllowOrigins: splitList(opt("cors_allow_origins"))}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	var problems []string

	switch c.AI.Provider {
	case ai.ProviderOpenAI, ai.ProviderGemini:
	default:
		problems = append(problems, fmt.Sprintf("AI_PROVIDER %q (want %s or %s)", c.AI.Provider, ai.ProviderOpenAI, ai.ProviderGemini))
	}
	if c.AI.RequestTimeout <= 0 {
		problems = append(problems, "AI_REQUEST_TIMEOUT must be positive")
	}
	if c.AI.FeedbackMaxTokens <= 0 {
		problems = append(problems, "FEEDBACK_MAX_TOKENS must be positive")
	}
	if c.AI.FeedbackTemperature < 0 || c.AI.FeedbackTemperature > 2 {
		problems = append(problems, "FEEDBACK_TEMPERATURE must be within [0, 2]")
	}
	if c.AI.EmbeddingDimensions < 0 {
		problems = append(problems, "EMBEDDING_DIMENSIONS must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
