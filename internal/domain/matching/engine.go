package matching

import (
	"fmt"
	"math"
	"sort"

	"talent-ai/internal/domain/similarity"
)

const scorePrecision = 4

type Candidate struct {
	ID        string
	Embedding []float64
}

type Result struct {
	ID    string
	Score float64
}

// Rank scores every candidate against query and returns the results ordered
// by score, highest first. Candidates with an empty id or embedding are
// skipped; ids are otherwise taken as given.
// Equal scores keep their input order.
func Rank(query []float64, candidates []Candidate) ([]Result, error) {
	out := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == "" || len(c.Embedding) == 0 {
			continue
		}

		score, err := similarity.Cosine(query, c.Embedding)
		if err != nil {
			return nil, fmt.Errorf("candidate %q (dim=%d, query dim=%d): %w", c.ID, len(c.Embedding), len(query), err)
		}

		out = append(out, Result{ID: c.ID, Score: roundScore(score)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out, nil
}

func roundScore(v float64) float64 {
	p := math.Pow(10, scorePrecision)
	return math.Round(v*p) / p
}
