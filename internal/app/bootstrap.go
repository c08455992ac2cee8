package app

import (
	"context"
	"fmt"
	"strings"

	"talent-ai/internal/ai"
	"talent-ai/internal/ai/gemini"
	"talent-ai/internal/ai/openai"
	"talent-ai/internal/config"
	"talent-ai/internal/delivery/http/middleware"
	"talent-ai/internal/delivery/http/routes"
	"talent-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

const Version = "1.0.0"

type App struct {
	Fiber *fiber.App
}

// Provider is what the service needs from a language-model backend.
type Provider interface {
	ai.Embedder
	ai.Completer
	EmbeddingModel() string
	ChatModel() string
}

func New(cfg config.Config, logger *zap.Logger, provider Provider) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, cfg, logger)
	registerRoutes(f, cfg, provider)

	return &App{Fiber: f}
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	provider, err := NewProvider(ctx, cfg.AI)
	if err != nil {
		return nil, nil, err
	}

	if strings.TrimSpace(cfg.AI.APIKey()) == "" {
		logger.Warn("provider credential is not configured; upstream calls will fail",
			zap.String("provider", cfg.AI.Provider))
	}

	logger.Info("ai provider ready",
		zap.String("provider", cfg.AI.Provider),
		zap.String("embedding_model", provider.EmbeddingModel()),
		zap.String("feedback_model", provider.ChatModel()),
		zap.Duration("request_timeout", cfg.AI.RequestTimeout),
	)

	app := New(cfg, logger, provider)
	return app, func() error { return logger.Sync() }, nil
}

// NewProvider builds the client for cfg.Provider.
func NewProvider(ctx context.Context, cfg config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case ai.ProviderOpenAI, "":
		return openai.NewClient(openai.Config{
			APIKey:         cfg.OpenAIAPIKey,
			BaseURL:        cfg.OpenAIBaseURL,
			EmbeddingModel: cfg.EmbeddingModel,
			ChatModel:      cfg.FeedbackModel,
			Dimensions:     cfg.EmbeddingDimensions,
		}), nil
	case ai.ProviderGemini:
		c, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:         cfg.GeminiAPIKey,
			EmbeddingModel: cfg.EmbeddingModel,
			ChatModel:      cfg.FeedbackModel,
			Dimensions:     cfg.EmbeddingDimensions,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.Provider)
	}
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *zap.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())

	app.Use(cors.New(corsConfig(cfg.CORS)))
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
			break
		}
	}

	// fiber refuses credentials together with a wildcard origin
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		AllowHeaders:     []string{fiber.HeaderContentType, fiber.HeaderAuthorization, middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: !wildcard,
	}
}

func registerRoutes(app *fiber.App, cfg config.Config, provider Provider) {
	if app == nil {
		return
	}

	var (
		embedder  ai.Embedder
		completer ai.Completer
	)
	if provider != nil {
		embedder = provider
		completer = provider
	}

	registry := routes.NewRegistry(routes.Usecases{
		Embedding: usecase.NewEmbeddingUsecase(embedder, cfg.AI.RequestTimeout),
		Matching:  usecase.NewMatchingUsecase(),
		Feedback: usecase.NewFeedbackUsecase(completer, usecase.FeedbackOptions{
			Temperature: cfg.AI.FeedbackTemperature,
			MaxTokens:   cfg.AI.FeedbackMaxTokens,
			Timeout:     cfg.AI.RequestTimeout,
		}),
	})
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
