package handler

import (
	"talent-ai/internal/delivery/http/dto"
	"talent-ai/internal/domain/matching"
	"talent-ai/internal/pkg/response"
	"talent-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if len(req.GraduateEmbedding) == 0 {
		return badRequest("Graduate embedding is required", nil)
	}
	if len(req.JobEmbeddings) == 0 {
		return badRequest("Job embeddings are required", nil)
	}

	candidates := make([]matching.Candidate, 0, len(req.JobEmbeddings))
	for _, je := range req.JobEmbeddings {
		candidates = append(candidates, matching.Candidate{ID: je.ID, Embedding: je.Embedding})
	}

	res, err := h.uc.Rank(c.Context(), req.GraduateEmbedding, candidates)
	if err != nil {
		return mapUsecaseError(err, "Bad request", "Error computing matches")
	}

	out := dto.MatchResponse{Matches: make([]dto.MatchItem, 0, len(res))}
	for _, m := range res {
		out.Matches = append(out.Matches, dto.MatchItem{ID: m.ID, Score: m.Score})
	}

	return response.Success(c, fiber.StatusOK, out)
}
