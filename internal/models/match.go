package models

// SkillStatus tags a table row as coming from the matched or missing list.
type SkillStatus string

const (
	StatusMatched SkillStatus = "Matched"
	StatusMissing SkillStatus = "Missing"
)

type SkillRow struct {
	Skill  string      `json:"skill"`
	Status SkillStatus `json:"status"`
}

// MatchSummary is the derived, presentation-ready view of one analysis:
// counts, score, top items per category and the flattened skill table.
// Row count always equals MatchedCount + MissingCount.
type MatchSummary struct {
	MatchedCount int        `json:"matched_count"`
	MissingCount int        `json:"missing_count"`
	ScorePercent float64    `json:"score_percent"`
	TopMatched   []string   `json:"top_matched"`
	TopMissing   []string   `json:"top_missing"`
	Table        []SkillRow `json:"table"`
}

// MatchReport is the full response for one submission: the raw model
// analysis plus the parsed lists and the derived summary.
type MatchReport struct {
	Analysis    string       `json:"analysis"`
	Matched     []string     `json:"matched_skills"`
	Missing     []string     `json:"missing_skills"`
	Suggestions []string     `json:"suggestions"`
	Summary     MatchSummary `json:"summary"`
}
