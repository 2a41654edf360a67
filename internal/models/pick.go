package models

// Pick is a single dish suggestion returned to the caller.
type Pick struct {
	Name   string `json:"name"`
	Link   string `json:"link"`
	Reason string `json:"reason"`
	Source string `json:"source"`
}

// ScoredResult is a search result annotated with its relevance score.
// Score may be negative.
type ScoredResult struct {
	Name    string
	Link    string
	Snippet string
	Score   int
	Reasons []string
}

// Recommendation is the payload served by GET /recommend.
type Recommendation struct {
	Picks          []Pick   `json:"picks"`
	TargetCalories int      `json:"targetCalories"`
	Activity       Activity `json:"activity"`
	Taste          Taste    `json:"taste"`
	UsedCSE        bool     `json:"usedCSE"`
}

// Clone returns a copy that shares no slices with r.
func (r *Recommendation) Clone() *Recommendation {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Picks = make([]Pick, len(r.Picks))
	copy(clone.Picks, r.Picks)
	return &clone
}
