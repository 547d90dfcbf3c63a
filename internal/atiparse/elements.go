package atiparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/reefwatch/icp-tracker/constants"
)

// Element is one tracked chemical symbol: the pattern that introduces its
// line in an ATI report and accessors into a Record's flat field pair.
type Element struct {
	Key     string
	pattern *regexp.Regexp
	fields  func(*Record) (**float64, **constants.ElementStatus)
}

// Reading returns the element's current value/status from r.
func (e Element) Reading(r *Record) Reading {
	v, s := e.fields(r)
	return Reading{Value: *v, Status: *s}
}

// notDetected marks a line whose value column reads "---".
const notDetected = "---"

// line anchors an element pattern at line start. The anchor is load-bearing:
// one- and two-letter symbols (S, Sr, Sb, Se, Sn) collide as substrings of
// each other and of unrelated words anywhere else on the line. Matching is
// case-sensitive: ATI prints symbols in chemical casing, and lowercase
// narrative words ("be patient", "w 15 dni") must never read as symbols.
func line(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + expr)
}

// elementTable drives extraction for every tracked symbol, ordered
// base -> major -> minor -> nutrient -> pollutant as printed by ATI.
var elementTable = []Element{
	// Base elements
	{"salinity", line(`Sal\.\s+total`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Salinity, &r.SalinityStatus }},
	{"kh", line(`KH\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.KH, &r.KHStatus }},

	// Major elements (mg/l)
	{"cl", line(`Cl\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Cl, &r.ClStatus }},
	{"na", line(`Na\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Na, &r.NaStatus }},
	{"mg", line(`Mg\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Mg, &r.MgStatus }},
	{"s", line(`S\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.S, &r.SStatus }},
	{"ca", line(`Ca\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Ca, &r.CaStatus }},
	{"k", line(`K\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.K, &r.KStatus }},
	{"br", line(`Br\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Br, &r.BrStatus }},
	{"sr", line(`Sr\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Sr, &r.SrStatus }},
	{"b", line(`B\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.B, &r.BStatus }},
	{"f", line(`F\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.F, &r.FStatus }},

	// Minor elements (µg/l)
	{"li", line(`Li\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Li, &r.LiStatus }},
	{"si", line(`Si\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Si, &r.SiStatus }},
	{"i", line(`I\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.I, &r.IStatus }},
	{"ba", line(`Ba\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Ba, &r.BaStatus }},
	{"mo", line(`Mo\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Mo, &r.MoStatus }},
	{"ni", line(`Ni\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Ni, &r.NiStatus }},
	{"mn", line(`Mn\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Mn, &r.MnStatus }},
	{"as", line(`As\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.As, &r.AsStatus }},
	{"be", line(`Be\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Be, &r.BeStatus }},
	{"cr", line(`Cr\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Cr, &r.CrStatus }},
	{"co", line(`Co\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Co, &r.CoStatus }},
	{"fe", line(`Fe\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Fe, &r.FeStatus }},
	{"cu", line(`Cu\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Cu, &r.CuStatus }},
	{"se", line(`Se\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Se, &r.SeStatus }},
	{"ag", line(`Ag\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Ag, &r.AgStatus }},
	{"v", line(`V\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.V, &r.VStatus }},
	{"zn", line(`Zn\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Zn, &r.ZnStatus }},
	{"sn", line(`Sn\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Sn, &r.SnStatus }},

	// Nutrients
	{"no3", line(`NO3\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.NO3, &r.NO3Status }},
	{"p", line(`P\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.P, &r.PStatus }},
	{"po4", line(`PO4\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.PO4, &r.PO4Status }},

	// Pollutants (µg/l)
	{"al", line(`Al\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Al, &r.AlStatus }},
	{"sb", line(`Sb\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Sb, &r.SbStatus }},
	{"bi", line(`Bi\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Bi, &r.BiStatus }},
	{"pb", line(`Pb\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Pb, &r.PbStatus }},
	{"cd", line(`Cd\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Cd, &r.CdStatus }},
	{"la", line(`La\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.La, &r.LaStatus }},
	{"tl", line(`Tl\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Tl, &r.TlStatus }},
	{"ti", line(`Ti\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Ti, &r.TiStatus }},
	{"w", line(`W\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.W, &r.WStatus }},
	{"hg", line(`Hg\s+`), func(r *Record) (**float64, **constants.ElementStatus) { return &r.Hg, &r.HgStatus }},
}

// Elements returns the tracked symbol table in report order. Consumers use
// it to walk a Record's element fields without repeating the field list.
func Elements() []Element {
	return elementTable
}

// statusPhrases is checked top to bottom; multi-word phrases come first so
// that "ABOVE NORMAL" never resolves to the bare "NORMAL" substring.
var statusPhrases = []string{
	"CRITICALLY LOW", "CRITICALLY HIGH",
	"ABOVE NORMAL", "BELOW NORMAL",
	"SLIGHTLY LOW", "SLIGHTLY HIGH",
	"NORMAL",
}

// reNumber matches the first decimal or scientific-notation number on a line.
var reNumber = regexp.MustCompile(`(?i)(\d+\.?\d*(?:e[+-]?\d+)?)`)

// extractValueAndStatus pulls the numeric value and the qualitative status
// out of one element line ("KH    8.5 dKH    NORMAL").
func extractValueAndStatus(lineText string) (value *float64, status *constants.ElementStatus) {
	if m := reNumber.FindStringSubmatch(lineText); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			value = &f
		}
	}

	upper := strings.ToUpper(lineText)
	for _, phrase := range statusPhrases {
		if strings.Contains(upper, phrase) {
			s := constants.ElementStatus(strings.ReplaceAll(phrase, " ", "_"))
			status = &s
			break
		}
	}
	return value, status
}

// extractElements scans one water section for every tracked symbol and sets
// the matching Record fields. Symbols without a matching line are left nil;
// report variants legitimately omit rarely-tested elements.
func extractElements(sectionText string, rec *Record) {
	for _, el := range elementTable {
		loc := el.pattern.FindStringIndex(sectionText)
		if loc == nil {
			continue
		}

		lineEnd := strings.IndexByte(sectionText[loc[0]:], '\n')
		var elementLine string
		if lineEnd == -1 {
			elementLine = sectionText[loc[0]:]
		} else {
			elementLine = sectionText[loc[0] : loc[0]+lineEnd]
		}

		valueDst, statusDst := el.fields(rec)
		if strings.Contains(elementLine, notDetected) {
			// Not-detected marker: discard any number on the line,
			// but keep the status when the lab still printed one.
			_, status := extractValueAndStatus(elementLine)
			if status != nil {
				*statusDst = status
			}
			continue
		}

		value, status := extractValueAndStatus(elementLine)
		if value != nil {
			*valueDst = value
		}
		if status != nil {
			*statusDst = status
		}
	}
}
