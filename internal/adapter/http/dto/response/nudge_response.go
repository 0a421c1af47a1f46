package response

import (
	"aviniti_tools/internal/domain/entities"
)

type NudgeResponse struct {
	ID         string `json:"id"`
	Variant    string `json:"variant"`
	MessageKey string `json:"messageKey"`
	CtaKey     string `json:"ctaKey"`
	TargetHref string `json:"targetHref"`
	TargetTool string `json:"targetTool,omitempty"`
	Icon       string `json:"icon,omitempty"`
}

type NudgeEvaluateResponse struct {
	Nudges []NudgeResponse `json:"nudges"`
}

func FromNudges(nudges []entities.EvaluatedNudge) NudgeEvaluateResponse {
	out := make([]NudgeResponse, 0, len(nudges))
	for _, n := range nudges {
		out = append(out, NudgeResponse{
			ID:         n.ID,
			Variant:    string(n.Variant),
			MessageKey: n.MessageKey,
			CtaKey:     n.CtaKey,
			TargetHref: n.TargetHref,
			TargetTool: string(n.TargetTool),
			Icon:       n.Icon,
		})
	}
	return NudgeEvaluateResponse{Nudges: out}
}
