package request

// TransitionPreviewRequest asks what context carries over when the visitor
// hops from one tool to another.
type TransitionPreviewRequest struct {
	From        string         `json:"from" binding:"required"`
	To          string         `json:"to" binding:"required"`
	SessionData map[string]any `json:"sessionData"`
	Locale      string         `json:"locale"`
}
