package atiparse

import (
	"regexp"
	"strings"
)

var (
	reRecommendations = regexp.MustCompile(`(?is)Recommendations?:(.+?)(?:\n\n|\z)`)
	reDosing          = regexp.MustCompile(`(?is)Dosing Instructions?:(.+?)(?:\n\n|\z)`)
)

// extractNarrative captures the free-text blocks of one section. The
// recommendations span is split into discrete one-line entries, dropping
// blanks and bullet-dash continuation lines; dosing instructions stay one
// blob. Both blocks are optional.
func extractNarrative(sectionText string, rec *Record) {
	if m := reRecommendations.FindStringSubmatch(sectionText); m != nil {
		var entries []string
		for _, ln := range strings.Split(strings.TrimSpace(m[1]), "\n") {
			ln = strings.TrimSpace(ln)
			if ln != "" && !strings.HasPrefix(ln, "-") {
				entries = append(entries, ln)
			}
		}
		if len(entries) > 0 {
			rec.Recommendations = entries
		}
	}

	if m := reDosing.FindStringSubmatch(sectionText); m != nil {
		text := strings.TrimSpace(m[1])
		if text != "" {
			rec.DosingInstructions = &text
		}
	}
}
