package interfaces

import (
	"context"
	"encoding/json"
	"time"
)

// GenerateOptions controls a single model call.
type GenerateOptions struct {
	Temperature     float64
	MaxOutputTokens int
	Timeout         time.Duration
}

// GenerateResult carries the model output. Data is the extracted JSON body
// when Success is true; Error holds the provider failure reason otherwise.
type GenerateResult struct {
	Success bool
	Data    json.RawMessage
	Error   string
}

// IAIClient abstracts external AI providers (e.g. Gemini).
//
// The tools-service uses it to generate structured JSON content and persist
// the raw model payload for traceability.
type IAIClient interface {
	GenerateJSONContent(ctx context.Context, prompt string, opts GenerateOptions) (GenerateResult, error)
}
