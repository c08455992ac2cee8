package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"talent-ai/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/", h)
	return app
}

func call(t *testing.T, app *fiber.App, rid string) (*http.Response, response.ErrorResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if rid != "" {
		req.Header.Set(HeaderRequestID, rid)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	var body response.ErrorResponse
	_ = json.Unmarshal(b, &body)
	return resp, body
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error { panic("boom") })

	resp, body := call(t, app, "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if body.Code != response.CodeInternal || body.Message != response.MessageInternalServerError {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestErrorMiddleware_HidesServerErrorDetails(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadGateway, response.CodeUpstreamFailure, "Error generating embedding", errors.New("secret upstream detail"))
	})

	resp, body := call(t, app, "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if body.Message != response.MessageInternalServerError {
		t.Fatalf("expected generic message, got %q", body.Message)
	}
	if body.Code != response.CodeUpstreamFailure {
		t.Fatalf("expected code to survive, got %q", body.Code)
	}
}

func TestErrorMiddleware_ClientErrorKeepsMessage(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "", "Text cannot be empty", nil)
	})

	resp, body := call(t, app, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body.Message != "Text cannot be empty" || body.Code != response.CodeInvalidInput {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestErrorMiddleware_PlainErrorIsInternal(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error { return errors.New("unexpected") })

	resp, body := call(t, app, "")
	if resp.StatusCode != http.StatusInternalServerError || body.Code != response.CodeInternal {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, body)
	}
}

func TestAccessLog_PropagatesRequestID(t *testing.T) {
	var seen string
	app := newApp(func(c fiber.Ctx) error {
		seen = RequestID(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, _ := call(t, app, "rid-123")
	if resp.Header.Get(HeaderRequestID) != "rid-123" {
		t.Fatalf("expected echoed request id, got %q", resp.Header.Get(HeaderRequestID))
	}
	if seen != "rid-123" {
		t.Fatalf("handler saw request id %q", seen)
	}
}

func TestErrorMiddleware_TruncatesLoggedCause(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	app := fiber.New()
	app.Use(NewErrorMiddleware(zap.New(core)).Middleware())
	app.Get("/", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, response.CodeUpstreamFailure, "Error generating feedback", errors.New(strings.Repeat("x", 4096)))
	})

	resp, _ := call(t, app, "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	entries := logs.FilterMessage("request failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one error log, got %d", len(entries))
	}
	logged, _ := entries[0].ContextMap()["error"].(string)
	if !strings.HasSuffix(logged, "...") || len([]rune(logged)) != maxLoggedErrorLen+3 {
		t.Fatalf("expected truncated cause, got %d runes", len([]rune(logged)))
	}
	if !strings.HasPrefix(logged, "Error generating feedback: x") {
		t.Fatalf("unexpected logged cause %q", logged)
	}
}
