package entities

// TransitionMetric is a (label, value) pair of display strings shown when a
// user moves between tools. Value is always a printable string; absent data
// is rendered as a placeholder, never as an empty or invalid value.
type TransitionMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TransitionData previews what context is carried when transitioning from one
// tool to the next: an ordered list of headline metrics plus an ordered list
// of carry-forward descriptions. Built fresh per request from whatever partial
// data the source tool happened to store.
type TransitionData struct {
	Metrics           []TransitionMetric `json:"metrics"`
	CarryForwardItems []string           `json:"carryForwardItems"`
}
