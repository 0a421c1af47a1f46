package response

import (
	"aviniti_tools/internal/domain/entities"
)

type TransitionMetricResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type TransitionPreviewResponse struct {
	Metrics           []TransitionMetricResponse `json:"metrics"`
	CarryForwardItems []string                   `json:"carryForwardItems"`
}

func FromTransitionData(d entities.TransitionData) TransitionPreviewResponse {
	metrics := make([]TransitionMetricResponse, 0, len(d.Metrics))
	for _, m := range d.Metrics {
		metrics = append(metrics, TransitionMetricResponse{Label: m.Label, Value: m.Value})
	}
	items := d.CarryForwardItems
	if items == nil {
		items = []string{}
	}
	return TransitionPreviewResponse{Metrics: metrics, CarryForwardItems: items}
}
