package entities

// EstimateApproach is the AI-recommended delivery approach.

type EstimateApproach string

const (
	ApproachCustom    EstimateApproach = "custom"
	ApproachReadyMade EstimateApproach = "ready-made"
	ApproachHybrid    EstimateApproach = "hybrid"
)

// EstimatePhase is one named stage of project delivery. Name, description and
// duration are AI-authored narrative; Cost is a deterministic share of the
// catalog-priced total and is never taken from the AI.
type EstimatePhase struct {
	Phase       int    `json:"phase"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Duration    string `json:"duration"`
}

// CostRange reports the estimated project cost. Min and Max are both set to
// the deterministic total, signaling a single-point estimate rather than a
// range.
type CostRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// EstimateTimeline combines the AI-authored week count with the reconciled
// phase list.
type EstimateTimeline struct {
	Weeks  int             `json:"weeks"`
	Phases []EstimatePhase `json:"phases"`
}

// MatchedSolution is a ready-made product the AI matched against the idea.
type MatchedSolution struct {
	Slug                   string  `json:"slug"`
	Name                   string  `json:"name"`
	StartingPrice          float64 `json:"startingPrice"`
	DeploymentTimeline     string  `json:"deploymentTimeline"`
	FeatureMatchPercentage float64 `json:"featureMatchPercentage"`
}

// StrategicInsight is an AI-authored strength/challenge/recommendation note.
type StrategicInsight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EstimateCreative is the AI-authored portion of an estimate: narrative only,
// no cost figures. Phase entries intentionally carry no cost field.
type EstimateCreative struct {
	ProjectName       string             `json:"projectName"`
	AlternativeNames  []string           `json:"alternativeNames,omitempty"`
	ProjectSummary    string             `json:"projectSummary"`
	EstimatedTimeline CreativeTimeline   `json:"estimatedTimeline"`
	Approach          EstimateApproach   `json:"approach"`
	MatchedSolution   *MatchedSolution   `json:"matchedSolution"`
	TechStack         []string           `json:"techStack,omitempty"`
	KeyInsights       []string           `json:"keyInsights"`
	StrategicInsights []StrategicInsight `json:"strategicInsights,omitempty"`
}

// CreativeTimeline is the AI-authored timeline before cost reconciliation.
type CreativeTimeline struct {
	Weeks  int             `json:"weeks"`
	Phases []CreativePhase `json:"phases"`
}

// CreativePhase is an AI-authored phase without a cost figure.
type CreativePhase struct {
	Phase       int    `json:"phase"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// EstimateResponse is the reconciled estimate returned to the client: AI
// narrative fields verbatim, deterministic pricing from the catalog.
type EstimateResponse struct {
	ProjectName       string             `json:"projectName"`
	AlternativeNames  []string           `json:"alternativeNames,omitempty"`
	ProjectSummary    string             `json:"projectSummary"`
	EstimatedCost     CostRange          `json:"estimatedCost"`
	EstimatedTimeline EstimateTimeline   `json:"estimatedTimeline"`
	Approach          EstimateApproach   `json:"approach"`
	MatchedSolution   *MatchedSolution   `json:"matchedSolution"`
	TechStack         []string           `json:"techStack"`
	KeyInsights       []string           `json:"keyInsights"`
	StrategicInsights []StrategicInsight `json:"strategicInsights"`
	Breakdown         []EstimatePhase    `json:"breakdown"`
	Pricing           PricingResult      `json:"pricing"`
}
