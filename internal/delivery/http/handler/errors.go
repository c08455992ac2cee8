package handler

import (
	"errors"

	"talent-ai/internal/delivery/http/middleware"
	"talent-ai/internal/pkg/response"
	"talent-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func badRequest(message string, cause error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, response.CodeInvalidInput, message, cause)
}

// mapUsecaseError turns usecase sentinels into HTTP errors. failMessage is
// only logged; clients of 5xx replies get the generic message.
func mapUsecaseError(err error, invalidMessage string, failMessage string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest(invalidMessage, err)
	case errors.Is(err, usecase.ErrDimensionMismatch):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeDimensionMismatch, "Embedding dimensions do not match", err)
	case errors.Is(err, usecase.ErrUpstreamTimeout):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeUpstreamTimeout, failMessage, err)
	case errors.Is(err, usecase.ErrUpstream):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeUpstreamFailure, failMessage, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, failMessage, err)
	}
}
