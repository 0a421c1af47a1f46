package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aviniti_tools/internal/usecase/interfaces"
)

func TestExtractJSON(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		got := extractJSON(`{"a":1}`)
		if string(got) != `{"a":1}` {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("fenced object", func(t *testing.T) {
		got := extractJSON("```json\n{\"a\":1}\n```")
		if string(got) != `{"a":1}` {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("no object", func(t *testing.T) {
		if got := extractJSON("sorry, cannot help"); got != nil {
			t.Fatalf("expected nil, got %q", got)
		}
	})

	t.Run("unbalanced braces", func(t *testing.T) {
		if got := extractJSON(`{"a":`); got != nil {
			t.Fatalf("expected nil, got %q", got)
		}
	})
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *GeminiGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &GeminiGateway{
		apiKey:     "test-key",
		model:      defaultModel,
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func modelResponse(text string) []byte {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return b
}

func TestGeminiGateway_GenerateJSONContent(t *testing.T) {
	opts := interfaces.GenerateOptions{Temperature: 0.3, MaxOutputTokens: 4096, Timeout: 5 * time.Second}

	t.Run("success", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("unexpected method %s", r.Method)
			}
			w.Write(modelResponse(`{"projectName":"OrderFlow"}`))
		})

		res, err := g.GenerateJSONContent(context.Background(), "prompt", opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || string(res.Data) != `{"projectName":"OrderFlow"}` {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("retries then succeeds", func(t *testing.T) {
		calls := 0
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write(modelResponse(`{"ok":true}`))
		})

		res, err := g.GenerateJSONContent(context.Background(), "prompt", opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success after retry, got %+v", res)
		}
		if calls != 2 {
			t.Fatalf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("non retryable status", func(t *testing.T) {
		calls := 0
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadRequest)
		})

		res, err := g.GenerateJSONContent(context.Background(), "prompt", opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.Error == "" {
			t.Fatalf("expected provider failure, got %+v", res)
		}
		if calls != 1 {
			t.Fatalf("expected no retries, got %d calls", calls)
		}
	})

	t.Run("retries exhausted", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		res, err := g.GenerateJSONContent(context.Background(), "prompt", opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.Error == "" {
			t.Fatalf("expected failure, got %+v", res)
		}
	})

	t.Run("model output without json", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write(modelResponse("I cannot produce an estimate."))
		})

		res, err := g.GenerateJSONContent(context.Background(), "prompt", opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success {
			t.Fatalf("expected failure, got %+v", res)
		}
	})
}
