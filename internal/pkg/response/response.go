package response

import "github.com/gofiber/fiber/v3"

// ErrorResponse is the body of every non-2xx reply. Message is generic and
// Code is a stable internal identifier; upstream error text is never included.
type ErrorResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Code    string      `json:"code"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageMethodNotAllowed    = "method not allowed"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeDimensionMismatch = "DIMENSION_MISMATCH"
	CodeUpstreamFailure   = "UPSTREAM_FAILURE"
	CodeUpstreamTimeout   = "UPSTREAM_TIMEOUT"
	CodeNotFound          = "NOT_FOUND"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeInternal          = "INTERNAL"
)

// Success writes data as the whole body.
func Success(c fiber.Ctx, status int, data interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

func Error(c fiber.Ctx, status int, code string, message string, data interface{}) error {
	st := normalizeStatus(status)
	msg := normalizeMessage(message, st)
	if code == "" {
		code = DefaultCodeForStatus(st)
	}
	return c.Status(st).JSON(ErrorResponse{Status: st, Message: msg, Code: code, Data: data})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessageForStatus(status)
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}

func DefaultCodeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return CodeInvalidInput
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusMethodNotAllowed:
		return CodeMethodNotAllowed
	default:
		return CodeInternal
	}
}
