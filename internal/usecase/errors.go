package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDimensionMismatch = errors.New("embedding dimensions do not match")
	ErrUpstream          = errors.New("upstream provider failure")
	ErrUpstreamTimeout   = errors.New("upstream provider timeout")
	ErrInternal          = errors.New("internal error")
)

// upstreamError classifies a provider failure. callCtx is the context the
// provider call ran under.
func upstreamError(callCtx context.Context, op string, err error) error {
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", ErrUpstreamTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
