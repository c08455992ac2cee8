package routes

import (
	"talent-ai/internal/delivery/http/handler"
	"talent-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	embed    *handler.EmbedHandler
	match    *handler.MatchHandler
	feedback *handler.FeedbackHandler
}

type Usecases struct {
	Embedding usecase.EmbeddingUsecase
	Matching  usecase.MatchingUsecase
	Feedback  usecase.FeedbackUsecase
}

func NewRegistry(uc Usecases) *Registry {
	return &Registry{
		health:   handler.NewHealthHandler(),
		embed:    handler.NewEmbedHandler(uc.Embedding),
		match:    handler.NewMatchHandler(uc.Matching),
		feedback: handler.NewFeedbackHandler(uc.Feedback),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.embed.RegisterRoutes(app)
	r.match.RegisterRoutes(app)
	r.feedback.RegisterRoutes(app)
}
