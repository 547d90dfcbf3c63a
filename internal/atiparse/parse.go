// Package atiparse turns the plain-text dump of an ATI Aquaristik ICP-OES
// report into structured test records, one per detected water section.
//
// The pipeline is pure and deterministic: section segmentation, shared
// metadata, quality scores, ~45 element readings, narrative blocks, then
// per-record validation. Partial extraction is the expected steady state;
// reports vary which elements they test.
package atiparse

import (
	"path/filepath"
	"regexp"

	"github.com/reefwatch/icp-tracker/constants"
)

// reFilenameDate recovers a YYYY-MM-DD token from the source filename, the
// one piece of context available at assembly time that was not body text.
var reFilenameDate = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Parse parses the full extracted text of one ATI report. filename is used
// only as a last-resort source for the test date. The returned records are
// assembled but not yet validated; call Validate per record so that one bad
// section never discards its siblings.
func Parse(text, filename string) []*Record {
	md := extractMetadata(text)

	if md.testDate == nil {
		if m := reFilenameDate.FindString(filepath.Base(filename)); m != "" {
			md.testDate = ParseDate(m)
		}
	}

	var records []*Record
	for _, sec := range splitSections(text) {
		rec := &Record{
			LabName:       constants.LabNameATI,
			WaterType:     sec.waterType,
			TestID:        md.testID,
			TestDate:      md.testDate,
			SampleDate:    md.sampleDate,
			ReceivedDate:  md.receivedDate,
			EvaluatedDate: md.evaluatedDate,
		}

		extractScores(sec.text, rec)
		extractElements(sec.text, rec)
		extractNarrative(sec.text, rec)

		records = append(records, rec)
	}
	return records
}
