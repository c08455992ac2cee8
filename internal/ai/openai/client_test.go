package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"talent-ai/internal/ai"
)

type stubServer struct {
	srv      *httptest.Server
	calls    atomic.Int32
	lastBody atomic.Value
}

func newStubServer(t *testing.T, status int, body string) *stubServer {
	t.Helper()

	s := &stubServer{}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		b, _ := io.ReadAll(r.Body)
		s.lastBody.Store(string(b))

		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *stubServer) requestBody(t *testing.T) map[string]any {
	t.Helper()
	raw, _ := s.lastBody.Load().(string)
	out := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("request body is not JSON: %v (%s)", err, raw)
	}
	return out
}

func newTestClient(s *stubServer, cfg Config) *Client {
	cfg.APIKey = "test-key"
	cfg.BaseURL = s.srv.URL + "/v1/"
	return NewClient(cfg)
}

func TestClient_Embed(t *testing.T) {
	s := newStubServer(t, http.StatusOK, `{
		"object": "list",
		"model": "text-embedding-3-large",
		"data": [{"object": "embedding", "index": 0, "embedding": [0.1, -0.2, 0.3]}],
		"usage": {"prompt_tokens": 1, "total_tokens": 1}
	}`)

	c := newTestClient(s, Config{})
	got, err := c.Embed(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []float64{0.1, -0.2, 0.3}
	if len(got) != len(want) {
		t.Fatalf("expected %d dims, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dim %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	body := s.requestBody(t)
	if body["model"] != DefaultEmbeddingModel {
		t.Fatalf("expected model %s, got %v", DefaultEmbeddingModel, body["model"])
	}
	if body["input"] != "hello" {
		t.Fatalf("expected input hello, got %v", body["input"])
	}
	if _, ok := body["dimensions"]; ok {
		t.Fatalf("dimensions must be omitted by default")
	}
}

func TestClient_EmbedWithDimensions(t *testing.T) {
	s := newStubServer(t, http.StatusOK, `{"object":"list","model":"m","data":[{"object":"embedding","index":0,"embedding":[1]}],"usage":{"prompt_tokens":1,"total_tokens":1}}`)

	c := newTestClient(s, Config{EmbeddingModel: "text-embedding-3-small", Dimensions: 256})
	if _, err := c.Embed(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	body := s.requestBody(t)
	if body["model"] != "text-embedding-3-small" {
		t.Fatalf("unexpected model %v", body["model"])
	}
	if body["dimensions"] != float64(256) {
		t.Fatalf("expected dimensions 256, got %v", body["dimensions"])
	}
}

func TestClient_EmbedUpstreamErrorIsNotRetried(t *testing.T) {
	s := newStubServer(t, http.StatusTooManyRequests, `{"error":{"message":"rate limited","type":"rate_limit"}}`)

	c := newTestClient(s, Config{})
	if _, err := c.Embed(context.Background(), "hello"); err == nil {
		t.Fatalf("expected error")
	}
	if got := s.calls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 upstream call, got %d", got)
	}
}

func TestClient_Complete(t *testing.T) {
	s := newStubServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Learn Docker."}}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 3, "total_tokens": 13}
	}`)

	c := newTestClient(s, Config{})
	got, err := c.Complete(context.Background(), ai.ChatRequest{
		System:      "be helpful",
		Prompt:      "analyze",
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "Learn Docker." {
		t.Fatalf("unexpected content %q", got)
	}

	body := s.requestBody(t)
	if body["model"] != DefaultChatModel {
		t.Fatalf("expected model %s, got %v", DefaultChatModel, body["model"])
	}
	if body["temperature"] != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", body["temperature"])
	}
	if body["max_tokens"] != float64(1000) {
		t.Fatalf("expected max_tokens 1000, got %v", body["max_tokens"])
	}

	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	first, _ := msgs[0].(map[string]any)
	if first["role"] != "system" || !strings.Contains(first["content"].(string), "helpful") {
		t.Fatalf("unexpected system message %#v", first)
	}
}

func TestClient_CompleteNoChoices(t *testing.T) {
	s := newStubServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-4","choices":[]}`)

	c := newTestClient(s, Config{})
	if _, err := c.Complete(context.Background(), ai.ChatRequest{Prompt: "p"}); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
