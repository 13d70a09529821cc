package models

// RoadmapStep is one funded milestone in an organization's sponsorship
// program. EstimatedFeePaise is what the org covers when the step completes.
type RoadmapStep struct {
	Step              int      `json:"step"`
	Title             string   `json:"title"`
	Duration          string   `json:"duration"`
	Description       string   `json:"description"`
	EstimatedFeePaise int64    `json:"estimated_fee_paise"`
	FundingAvailable  bool     `json:"funding_available"`
	FundingSource     string   `json:"funding_source,omitempty"`
	FundingPaise      int64    `json:"funding_paise"`
	Skills            []string `json:"skills,omitempty"`
}

// Organization is a sponsor with an ordered roadmap. Read-only to the
// funding engine.
type Organization struct {
	Name        string        `json:"name"`
	Field       string        `json:"field"`
	Description string        `json:"description"`
	Roadmap     []RoadmapStep `json:"roadmap,omitempty"`
}
