package usecase

import (
	"context"
	"strings"
	"time"

	"talent-ai/internal/ai"
	"talent-ai/internal/domain/feedback"
)

type FeedbackUsecase interface {
	Generate(ctx context.Context, profile feedback.Profile, reqs feedback.Requirements) (feedback.Report, error)
}

type FeedbackOptions struct {
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type Feedback struct {
	completer ai.Completer
	opts      FeedbackOptions
}

func NewFeedbackUsecase(completer ai.Completer, opts FeedbackOptions) *Feedback {
	return &Feedback{completer: completer, opts: opts}
}

func (u *Feedback) Generate(ctx context.Context, profile feedback.Profile, reqs feedback.Requirements) (feedback.Report, error) {
	if strings.TrimSpace(profile.Education) == "" {
		return feedback.Report{}, ErrInvalidInput
	}
	if u.completer == nil {
		return feedback.Report{}, ErrInternal
	}

	callCtx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	raw, err := u.completer.Complete(callCtx, ai.ChatRequest{
		System:      feedback.SystemInstruction,
		Prompt:      feedback.BuildPrompt(profile, reqs),
		Temperature: u.opts.Temperature,
		MaxTokens:   u.opts.MaxTokens,
	})
	if err != nil {
		return feedback.Report{}, upstreamError(callCtx, "feedback", err)
	}

	return feedback.ParseReport(raw), nil
}
