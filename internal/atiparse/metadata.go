package atiparse

import (
	"regexp"
	"time"
)

// metadata holds the document-wide fields printed once per report,
// regardless of how many water sections follow.
type metadata struct {
	testID        *string
	testDate      *time.Time
	sampleDate    *time.Time
	receivedDate  *time.Time
	evaluatedDate *time.Time
}

var reTestID = regexp.MustCompile(`(?i)(?:Test ID|Barcode)[:\s]+(\d+)`)

// datePatterns maps label synonyms onto semantic date fields. ATI prints
// "Created" for the sample collection date and "Arrived in the laboratory"
// for the receiving date; older layouts use the plain labels. First match
// by scan order wins; synonyms are not expected to co-occur.
var datePatterns = []struct {
	re    *regexp.Regexp
	field func(*metadata) **time.Time
}{
	{regexp.MustCompile(`(?i)Test Date[:\s]+([^\n]+)`), func(m *metadata) **time.Time { return &m.testDate }},
	{regexp.MustCompile(`(?i)Created[:\s]+([^\n]+)`), func(m *metadata) **time.Time { return &m.sampleDate }},
	{regexp.MustCompile(`(?i)Sample Date[:\s]+([^\n]+)`), func(m *metadata) **time.Time { return &m.sampleDate }},
	{regexp.MustCompile(`(?i)Arrived in the laboratory[:\s]+([^\n]+)`), func(m *metadata) **time.Time { return &m.receivedDate }},
	{regexp.MustCompile(`(?i)Received[:\s]+([^\n]+)`), func(m *metadata) **time.Time { return &m.receivedDate }},
	{regexp.MustCompile(`(?i)Evaluated[:\s]+([^\n]+)`), func(m *metadata) **time.Time { return &m.evaluatedDate }},
}

// extractMetadata pulls the test/barcode ID and the labelled dates from the
// full document text. ATI prints no explicit test date, so the evaluated
// date doubles as the test date when the label is absent.
func extractMetadata(text string) metadata {
	var md metadata

	if m := reTestID.FindStringSubmatch(text); m != nil {
		id := m[1]
		md.testID = &id
	}

	for _, dp := range datePatterns {
		dst := dp.field(&md)
		if *dst != nil {
			continue
		}
		m := dp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if t := ParseDate(m[1]); t != nil {
			*dst = t
		}
	}

	if md.testDate == nil && md.evaluatedDate != nil {
		md.testDate = md.evaluatedDate
	}
	return md
}
