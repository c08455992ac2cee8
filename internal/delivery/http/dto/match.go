package dto

type JobEmbedding struct {
	ID        string    `json:"id"`
	Embedding []float64 `json:"embedding"`
}

type MatchRequest struct {
	GraduateEmbedding []float64      `json:"graduate_embedding"`
	JobEmbeddings     []JobEmbedding `json:"job_embeddings"`
}

type MatchItem struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

type MatchResponse struct {
	Matches []MatchItem `json:"matches"`
}
