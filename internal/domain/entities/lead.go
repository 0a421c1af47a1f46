package entities

import (
	"encoding/json"
	"time"
)

// SubmissionStatus tracks the processing outcome of an AI tool submission.

type SubmissionStatus string

const (
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusFailed    SubmissionStatus = "failed"
)

// Lead is a captured sales lead persisted by the tools backend.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Persistence is fire-and-forget: a failed write must never alter the
// response returned to the end user.

type Lead struct {
	ID          string    `json:"id"`
	Email       string    `json:"email,omitempty"`
	Name        string    `json:"name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Whatsapp    string    `json:"whatsapp,omitempty"`
	Source      ToolSlug  `json:"source"`
	Locale      string    `json:"locale"`
	ProjectType string    `json:"project_type,omitempty"`
	Features    []string  `json:"features,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AISubmission is one AI tool invocation persisted for audit and analytics.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
//
// Request and Response keep the original JSON bodies for traceability; the
// different tools vary in schema so the raw form is the source of truth.

type AISubmission struct {
	ID               string           `json:"id"`
	Tool             ToolSlug         `json:"tool"`
	LeadID           string           `json:"lead_id"`
	Request          json.RawMessage  `json:"request,omitempty"`
	Response         json.RawMessage  `json:"response,omitempty"`
	ProcessingTimeMs int64            `json:"processing_time_ms"`
	Model            string           `json:"model"`
	Locale           string           `json:"locale"`
	Status           SubmissionStatus `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
}
