package usecase

import (
	"context"
	"errors"
	"fmt"

	"talent-ai/internal/domain/matching"
	"talent-ai/internal/domain/similarity"
)

type MatchingUsecase interface {
	Rank(ctx context.Context, query []float64, candidates []matching.Candidate) ([]matching.Result, error)
}

type Matching struct{}

func NewMatchingUsecase() *Matching {
	return &Matching{}
}

func (u *Matching) Rank(ctx context.Context, query []float64, candidates []matching.Candidate) ([]matching.Result, error) {
	if len(query) == 0 || len(candidates) == 0 {
		return nil, ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := matching.Rank(query, candidates)
	if err != nil {
		if errors.Is(err, similarity.ErrDimensionMismatch) {
			return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
		}
		if errors.Is(err, similarity.ErrNonFinite) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return res, nil
}
