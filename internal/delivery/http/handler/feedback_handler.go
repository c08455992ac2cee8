package handler

import (
	"strings"

	"talent-ai/internal/delivery/http/dto"
	"talent-ai/internal/domain/feedback"
	"talent-ai/internal/pkg/response"
	"talent-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/feedback", h.Feedback)
}

func (h *FeedbackHandler) Feedback(c fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if req.GraduateProfile == nil {
		return badRequest("Graduate profile is required", nil)
	}
	if req.JobRequirements == nil {
		return badRequest("Job requirements are required", nil)
	}
	// an explicit empty list is accepted; only absent or null is rejected
	if req.GraduateProfile.Skills == nil {
		return badRequest("Graduate skills are required", nil)
	}
	if req.JobRequirements.Skills == nil {
		return badRequest("Job required skills are required", nil)
	}
	if strings.TrimSpace(req.GraduateProfile.Education) == "" {
		return badRequest("Graduate education is required", nil)
	}

	profile := feedback.Profile{
		Skills:     req.GraduateProfile.Skills,
		Education:  req.GraduateProfile.Education,
		Experience: req.GraduateProfile.Experience,
	}
	reqs := feedback.Requirements{
		Skills:     req.JobRequirements.Skills,
		Education:  req.JobRequirements.Education,
		Experience: req.JobRequirements.Experience,
	}

	rep, err := h.uc.Generate(c.Context(), profile, reqs)
	if err != nil {
		return mapUsecaseError(err, "Graduate education is required", "Error generating feedback")
	}

	out := dto.FeedbackResponse{
		Feedback:        rep.Feedback,
		SkillGaps:       nonNil(rep.SkillGaps),
		Recommendations: nonNil(rep.Recommendations),
	}
	return response.Success(c, fiber.StatusOK, out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
