package request

// NudgeEvaluateRequest carries a tool result payload for rule evaluation.
//
// `data` is the tool's result object as-is; the rule engine walks it by
// dotted path and treats missing or mistyped fields as non-matches.

type NudgeEvaluateRequest struct {
	Tool      string         `json:"tool" binding:"required"`
	Data      map[string]any `json:"data"`
	Max       int            `json:"max"`
	SessionID string         `json:"sessionId"`
}

// NudgeDismissRequest hides one nudge for the rest of the session.
type NudgeDismissRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	NudgeID   string `json:"nudgeId" binding:"required"`
}
