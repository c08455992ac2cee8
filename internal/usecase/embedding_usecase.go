package usecase

import (
	"context"
	"strings"
	"time"

	"talent-ai/internal/ai"
)

type EmbeddingUsecase interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

type Embedding struct {
	embedder ai.Embedder
	timeout  time.Duration
}

func NewEmbeddingUsecase(embedder ai.Embedder, timeout time.Duration) *Embedding {
	return &Embedding{embedder: embedder, timeout: timeout}
}

func (u *Embedding) Embed(ctx context.Context, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}
	if u.embedder == nil {
		return nil, ErrInternal
	}

	callCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	vec, err := u.embedder.Embed(callCtx, text)
	if err != nil {
		return nil, upstreamError(callCtx, "embed", err)
	}
	return vec, nil
}
