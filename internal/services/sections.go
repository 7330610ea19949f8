package services

import (
	"regexp"
	"strings"
)

// Sections holds the three labeled blocks scraped out of a model reply.
// A section whose header is absent from the reply is simply empty; the
// model phrasing its answer differently is not an error.
type Sections struct {
	Matched     []string
	Missing     []string
	Suggestions []string
}

// Each header is located case-insensitively anywhere in the reply. The
// capture runs from the end of the header up to the first blank line or
// the end of input, whichever comes first. A section whose own content
// contains a blank line is therefore truncated early; that matches the
// upstream behavior and is pinned by tests.
var (
	matchedSkillsRe = regexp.MustCompile(`(?i)Matched Skills[:\s]*([\s\S]*?)(?:\n\s*\n|$)`)
	missingSkillsRe = regexp.MustCompile(`(?i)Missing Skills[:\s]*([\s\S]*?)(?:\n\s*\n|$)`)
	suggestionsRe   = regexp.MustCompile(`(?i)Suggestions(?: to improve the resume)?[:\s]*([\s\S]*?)(?:\n\s*\n|$)`)
)

// bullet markers stripped from both ends of every captured line
const bulletCutset = " -•\t"

// ParseSections extracts the matched skills, missing skills and
// suggestions lists from a free-form model reply. Pure; never fails:
// malformed input yields empty lists.
func ParseSections(reply string) Sections {
	return Sections{
		Matched:     extractSection(matchedSkillsRe, reply),
		Missing:     extractSection(missingSkillsRe, reply),
		Suggestions: extractSection(suggestionsRe, reply),
	}
}

func extractSection(re *regexp.Regexp, reply string) []string {
	m := re.FindStringSubmatch(reply)
	if m == nil {
		return nil
	}

	var items []string
	for _, line := range strings.Split(m[1], "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, strings.Trim(line, bulletCutset))
	}

	return items
}
