package services

import (
	"math"

	"resume-matcher/internal/models"
)

// BuildMatchSummary derives the displayable score and skill table from
// the two skill lists. Pure function of its inputs; no I/O.
//
// scorePercent = round(100 * |matched| / max(1, |matched| + |missing|), 2).
// The max(1, ...) denominator guard guarantees no division by zero when
// both lists are empty (result: 0.0), and is a deliberate tie-break
// policy, not a numerical accident.
func BuildMatchSummary(matched, missing []string) models.MatchSummary {
	denom := len(matched) + len(missing)
	if denom < 1 {
		denom = 1
	}
	score := roundTo(100*float64(len(matched))/float64(denom), 2)

	// Matched rows first, then missing rows, each list in original order.
	table := make([]models.SkillRow, 0, len(matched)+len(missing))
	for _, skill := range matched {
		table = append(table, models.SkillRow{Skill: skill, Status: models.StatusMatched})
	}
	for _, skill := range missing {
		table = append(table, models.SkillRow{Skill: skill, Status: models.StatusMissing})
	}

	return models.MatchSummary{
		MatchedCount: len(matched),
		MissingCount: len(missing),
		ScorePercent: score,
		TopMatched:   topN(matched, 3),
		TopMissing:   topN(missing, 3),
		Table:        table,
	}
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

func topN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}
