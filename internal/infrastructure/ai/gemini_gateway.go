package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"aviniti_tools/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrGeminiGatewayNotConfigured = errors.New("gemini gateway not configured")

const (
	defaultModel   = "gemini-2.0-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	maxRetries    = 2
	baseDelay     = 1000 * time.Millisecond
	maxDelay      = 5000 * time.Millisecond
	delayMultiple = 2
	jitterRange   = 500 * time.Millisecond
)

// GeminiGateway calls the Gemini generateContent REST API and extracts the
// JSON body the model was instructed to return.
type GeminiGateway struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

func NewGeminiGateway(apiKey string) (*GeminiGateway, error) {
	if isAIGatewayMockEnabled() {
		log.Printf("[ai][gateway] mock mode enabled")
		return &GeminiGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[ai][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = defaultModel
	}
	baseURL := strings.TrimSpace(os.Getenv("GEMINI_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log.Printf("[ai][gateway] Gemini client initialized model=%s", model)

	return &GeminiGateway{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}, nil
}

type generateContentRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (g *GeminiGateway) GenerateJSONContent(ctx context.Context, prompt string, opts interfaces.GenerateOptions) (interfaces.GenerateResult, error) {
	if g != nil && g.mockMode {
		log.Printf("[ai][gateway] mock generate prompt_len=%d", len(prompt))
		return interfaces.GenerateResult{Success: true, Data: json.RawMessage(`{}`)}, nil
	}

	if g == nil || g.httpClient == nil {
		log.Printf("[ai][gateway] gateway not configured")
		return interfaces.GenerateResult{}, ErrGeminiGatewayNotConfigured
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      opts.Temperature,
			MaxOutputTokens:  opts.MaxOutputTokens,
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return interfaces.GenerateResult{}, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	log.Printf("[ai][gateway] generate start model=%s prompt_len=%d", g.model, len(prompt))

	var lastStatus int
	var lastErr error
	delay := baseDelay
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			wait := delay + time.Duration(rand.Int63n(int64(jitterRange)))
			log.Printf("[ai][gateway] retrying attempt=%d wait=%s last_status=%d", attempt, wait, lastStatus)
			select {
			case <-ctx.Done():
				return interfaces.GenerateResult{}, ctx.Err()
			case <-time.After(wait):
			}
			delay *= delayMultiple
			if delay > maxDelay {
				delay = maxDelay
			}
		}

		status, respBody, err := g.post(ctx, url, body)
		if err != nil {
			if ctx.Err() != nil {
				return interfaces.GenerateResult{}, ctx.Err()
			}
			lastErr = err
			lastStatus = 0
			continue
		}
		if isRetryableStatus(status) {
			lastStatus = status
			lastErr = fmt.Errorf("gemini status %d", status)
			continue
		}
		if status != http.StatusOK {
			log.Printf("[ai][gateway] generate failed status=%d", status)
			return interfaces.GenerateResult{Error: fmt.Sprintf("gemini status %d", status)}, nil
		}
		return parseGenerateResponse(respBody)
	}

	log.Printf("[ai][gateway] generate exhausted retries err=%v", lastErr)
	return interfaces.GenerateResult{Error: fmt.Sprintf("retries exhausted: %v", lastErr)}, nil
}

func (g *GeminiGateway) post(ctx context.Context, url string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}

func parseGenerateResponse(respBody []byte) (interfaces.GenerateResult, error) {
	var parsed generateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		log.Printf("[ai][gateway] response unmarshal failed err=%v", err)
		return interfaces.GenerateResult{Error: "unparseable provider response"}, nil
	}
	if parsed.Error != nil {
		log.Printf("[ai][gateway] provider error code=%d msg=%s", parsed.Error.Code, parsed.Error.Message)
		return interfaces.GenerateResult{Error: parsed.Error.Message}, nil
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		log.Printf("[ai][gateway] empty candidates")
		return interfaces.GenerateResult{Error: "empty model response"}, nil
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	data := extractJSON(text)
	if data == nil {
		log.Printf("[ai][gateway] no JSON object in model output text_len=%d", len(text))
		return interfaces.GenerateResult{Error: "no JSON object in model output"}, nil
	}
	log.Printf("[ai][gateway] generate success data_len=%d", len(data))
	return interfaces.GenerateResult{Success: true, Data: data}, nil
}

// extractJSON pulls the outermost JSON object out of the model text, which
// may wrap it in markdown fences or prose.
func extractJSON(text string) json.RawMessage {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}
	candidate := []byte(text[start : end+1])
	if !json.Valid(candidate) {
		return nil
	}
	return json.RawMessage(candidate)
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return true
	}
	return false
}

func isAIGatewayMockEnabled() bool {
	for _, key := range []string{"AI_GATEWAY_MOCK", "GEMINI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
