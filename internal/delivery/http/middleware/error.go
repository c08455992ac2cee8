package middleware

import (
	"errors"

	"talent-ai/internal/logger"
	"talent-ai/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, code string, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Code: code, Message: message, Cause: cause}
}

// upstream errors can echo whole prompts or completions
const maxLoggedErrorLen = 512

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("rid", RequestID(c)),
					zap.String("path", c.Path()),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, code, msg := normalizeError(err)
		m.log(c, status, code, err)
		return response.Error(c, status, code, msg, nil)
	}
}

func (m *ErrorMiddleware) log(c fiber.Ctx, status int, code string, err error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("code", code),
		zap.String("rid", RequestID(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("error", logger.Truncate(err.Error(), maxLoggedErrorLen)),
	}
	if status >= 500 {
		m.logger.Error("request failed", fields...)
		return
	}
	m.logger.Debug("request rejected", fields...)
}

func normalizeError(err error) (int, string, string) {
	if err == nil {
		return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 {
			return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError
		}

		status := appErr.StatusCode
		code := appErr.Code
		if code == "" {
			code = response.DefaultCodeForStatus(status)
		}

		if status >= 500 {
			return fiber.StatusInternalServerError, code, response.MessageInternalServerError
		}

		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, code, msg
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError
		}

		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, response.DefaultCodeForStatus(status), msg
	}

	return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError
}
