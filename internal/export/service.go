package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/reefwatch/icp-tracker/internal/atiparse"
	"github.com/reefwatch/icp-tracker/internal/repository"
	"github.com/reefwatch/icp-tracker/internal/utils"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// test-history exports. One row per stored test, one column per tracked
// element, so a spreadsheet chart over any column is a trend line.
type Service struct {
	testsRepo repository.IcpTestRepository
	logger    *slog.Logger
}

func NewService(testsRepo repository.IcpTestRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{testsRepo: testsRepo, logger: logger}
}

// ExportTestsXLSX returns an XLSX workbook (as bytes) for the given tank and
// date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all tests for the tank.
func (s *Service) ExportTestsXLSX(ctx context.Context, tankID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	tests, err := s.testsRepo.ListByTank(ctx, tankID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query tests: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "ICP Tests"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Test Date",
		"Water Type",
		"Test ID",
		"Overall",
		"Base Elements",
		"Major Elements",
		"Minor Elements",
		"Pollutants",
	}
	elements := atiparse.Elements()
	for _, el := range elements {
		headers = append(headers, strings.ToUpper(el.Key))
	}
	headers = append(headers, "Report File")

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, t := range tests {
		rec := utils.ToRecord(t)

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, t.TestDate.Format("2006-01-02"))
		write(2, string(t.WaterType))
		if t.TestID != nil {
			write(3, *t.TestID)
		}
		writeScore(write, 4, t.ScoreOverall)
		writeScore(write, 5, t.ScoreBaseElements)
		writeScore(write, 6, t.ScoreMajorElements)
		writeScore(write, 7, t.ScoreMinorElements)
		writeScore(write, 8, t.ScorePollutants)

		col := 9
		for _, el := range elements {
			if rd := el.Reading(rec); rd.Value != nil {
				write(col, *rd.Value)
			}
			col++
		}
		if t.PdfFilename != nil {
			write(col, *t.PdfFilename)
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 11) // water type
	_ = f.SetColWidth(sheet, "C", "C", 10) // test id

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"tank_id", tankID.String(),
		"rows", len(tests),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeScore(write func(int, any), col int, v *int) {
	if v != nil {
		write(col, *v)
	}
}
