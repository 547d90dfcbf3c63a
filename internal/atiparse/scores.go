package atiparse

import (
	"regexp"
	"strconv"
)

// scorePatterns holds the five fixed quality-score labels. Each is matched
// independently; a missing score never blocks extraction of the others.
var scorePatterns = []struct {
	re    *regexp.Regexp
	field func(*Record) **int
}{
	{scoreRegexp("Major Elements"), func(r *Record) **int { return &r.ScoreMajorElements }},
	{scoreRegexp("Minor Elements"), func(r *Record) **int { return &r.ScoreMinorElements }},
	{scoreRegexp("Pollutants"), func(r *Record) **int { return &r.ScorePollutants }},
	{scoreRegexp("Base Elements"), func(r *Record) **int { return &r.ScoreBaseElements }},
	{scoreRegexp("Overall"), func(r *Record) **int { return &r.ScoreOverall }},
}

func scoreRegexp(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + label + `[:\s]+(\d+)`)
}

// extractScores fills the 0-100 quality sub-scores found in one section.
func extractScores(sectionText string, rec *Record) {
	for _, sp := range scorePatterns {
		m := sp.re.FindStringSubmatch(sectionText)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		*sp.field(rec) = &n
	}
}
