package handler

import (
	"strings"

	"talent-ai/internal/delivery/http/dto"
	"talent-ai/internal/pkg/response"
	"talent-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmbedHandler struct {
	uc usecase.EmbeddingUsecase
}

func NewEmbedHandler(uc usecase.EmbeddingUsecase) *EmbedHandler {
	return &EmbedHandler{uc: uc}
}

func (h *EmbedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/embed", h.Embed)
}

func (h *EmbedHandler) Embed(c fiber.Ctx) error {
	var req dto.EmbedRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest("Text cannot be empty", nil)
	}

	vec, err := h.uc.Embed(c.Context(), req.Text)
	if err != nil {
		return mapUsecaseError(err, "Text cannot be empty", "Error generating embedding")
	}

	return response.Success(c, fiber.StatusOK, dto.EmbedResponse{Embedding: vec})
}
