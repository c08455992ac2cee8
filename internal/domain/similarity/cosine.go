package similarity

import (
	"errors"
	"math"
)

var (
	ErrDimensionMismatch = errors.New("embedding dimensions do not match")
	ErrNonFinite         = errors.New("embedding contains non-finite values")
)

// Cosine returns the cosine similarity of a and b in [-1, 1].
// A zero-norm vector on either side yields 0.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	// Both vectors are scaled by their largest component so squares neither
	// overflow nor underflow for any finite input.
	scaleA, scaleB := maxAbs(a), maxAbs(b)
	if math.IsNaN(scaleA) || math.IsNaN(scaleB) || math.IsInf(scaleA, 0) || math.IsInf(scaleB, 0) {
		return 0, ErrNonFinite
	}
	if scaleA == 0 || scaleB == 0 {
		return 0, nil
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := a[i]/scaleA, b[i]/scaleB
		dot += x * y
		normA += x * x
		normB += y * y
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, ErrNonFinite
	}
	return math.Max(-1, math.Min(1, score)), nil
}

func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		if math.IsNaN(x) {
			return x
		}
		if ax := math.Abs(x); ax > m {
			m = ax
		}
	}
	return m
}
