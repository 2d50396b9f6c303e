package types

// Confidence bands the overall score into a coarse reliability indicator.
type Confidence string

const (
	// ConfidenceHigh is assigned to overall scores above 85.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium is assigned to overall scores above 70.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow is assigned to everything else.
	ConfidenceLow Confidence = "low"
)

// SubScore is one weighted component of the overall match score. Value is on
// a 0-100 scale before weighting.
type SubScore struct {
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// ScoringBreakdown exposes the four sub-scores composing the overall score.
type ScoringBreakdown struct {
	Missions   SubScore `json:"missions"`
	Skills     SubScore `json:"skills"`
	Experience SubScore `json:"experience"`
	Quality    SubScore `json:"quality"`
}

// MatchResult is the outcome of scoring one candidate against one job.
type MatchResult struct {
	ID                     string           `json:"id"`
	Score                  int              `json:"score"`
	Confidence             Confidence       `json:"confidence"`
	Breakdown              ScoringBreakdown `json:"scoring_breakdown"`
	MatchedSkills          []string         `json:"matched_skills"`
	Recommendation         string           `json:"recommendation"`
	ImprovementSuggestions []string         `json:"improvement_suggestions"`
	EvaluatedAt            int64            `json:"evaluated_at"`
}
