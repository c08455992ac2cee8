package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"talent-ai/internal/ai"
)

const (
	DefaultEmbeddingModel = "text-embedding-3-large"
	DefaultChatModel      = "gpt-4"
)

// Client implements ai.Embedder and ai.Completer on top of the official SDK.
// SDK retries are disabled; every call is single-shot.
type Client struct {
	client         *openai.Client
	embeddingModel string
	chatModel      string
	dimensions     int
}

type Config struct {
	APIKey         string
	BaseURL        string
	EmbeddingModel string
	ChatModel      string
	// Dimensions requests a shortened embedding when > 0.
	Dimensions     int
}

func NewClient(cfg Config) *Client {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}

	client := openai.NewClient(opts...)

	embeddingModel := strings.TrimSpace(cfg.EmbeddingModel)
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	chatModel := strings.TrimSpace(cfg.ChatModel)
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	return &Client{
		client:         &client,
		embeddingModel: embeddingModel,
		chatModel:      chatModel,
		dimensions:     cfg.Dimensions,
	}
}

var (
	_ ai.Embedder  = (*Client)(nil)
	_ ai.Completer = (*Client)(nil)
)

func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.embeddingModel),
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
	}
	if c.dimensions > 0 {
		params.Dimensions = openai.Int(int64(c.dimensions))
	}

	resp, err := c.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("openai embeddings: empty response")
	}

	return resp.Data[0].Embedding, nil
}

func (c *Client) Complete(ctx context.Context, req ai.ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.chatModel),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat completion: no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *Client) EmbeddingModel() string {
	if c == nil {
		return ""
	}
	return c.embeddingModel
}

func (c *Client) ChatModel() string {
	if c == nil {
		return ""
	}
	return c.chatModel
}
