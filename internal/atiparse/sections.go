package atiparse

import (
	"regexp"

	"github.com/reefwatch/icp-tracker/constants"
)

// section is one water sample's span of the report text.
type section struct {
	waterType constants.WaterType
	text      string
}

var (
	reSaltIntro    = regexp.MustCompile(`(?i)Results of Salt water`)
	reROIntro      = regexp.MustCompile(`(?i)Results of (?:Osmosis|RO) water`)
	reAnyResultsOf = regexp.MustCompile(`(?i)Results of `)
)

// splitSections carves the report into water-type sections. Each section
// runs from its introducer phrase to the next "Results of " label of any
// kind or end of text, so an unrecognized sample type never bleeds into
// the section before it. The result is never empty: when neither
// introducer is found the whole text becomes a single saltwater section,
// because older report layouts omit the header and losing the document
// would be worse than mis-tagging its water type.
func splitSections(text string) []section {
	saltLoc := reSaltIntro.FindStringIndex(text)
	roLoc := reROIntro.FindStringIndex(text)

	spanEnd := func(start int) int {
		// Skip past the introducer itself before hunting the terminator.
		rest := start + len("Results of ")
		if rest >= len(text) {
			return len(text)
		}
		if loc := reAnyResultsOf.FindStringIndex(text[rest:]); loc != nil {
			return rest + loc[0]
		}
		return len(text)
	}

	var sections []section
	if saltLoc != nil {
		sections = append(sections, section{
			waterType: constants.WaterTypeSaltwater,
			text:      text[saltLoc[0]:spanEnd(saltLoc[0])],
		})
	}
	if roLoc != nil {
		sections = append(sections, section{
			waterType: constants.WaterTypeROWater,
			text:      text[roLoc[0]:spanEnd(roLoc[0])],
		})
	}
	if len(sections) == 0 {
		sections = append(sections, section{
			waterType: constants.WaterTypeSaltwater,
			text:      text,
		})
	}
	return sections
}
