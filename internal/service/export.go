package service

import (
	"fmt"
	"time"

	"oncall-directory-backend/internal/scheduling"

	"github.com/xuri/excelize/v2"
)

// scheduleExportHeader lists the columns of the month export sheet
var scheduleExportHeader = []string{
	"Date", "Specialty", "Healthcare Plan", "Provider",
	"Second Phone", "Second Phone Pref", "Cover", "Covering Provider",
}

// ExportMonth renders every assignment of a calendar month into an XLSX
// workbook and returns the file bytes plus a download filename. An empty
// specialty exports all specialties.
func (s *ScheduleService) ExportMonth(month time.Time, specialty string) ([]byte, string, error) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	assignments, err := s.repo.ListAllByRange(from, to, specialty)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list assignments for export: %w", err)
	}

	f := excelize.NewFile()
	// WriteToBuffer needs the file open; close only on error paths

	sheetName := "On-Call Schedule"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range scheduleExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("failed to style header: %w", err)
		}
	}

	for row, a := range assignments {
		values := []interface{}{
			scheduling.FormatDay(a.Date),
			a.Specialty,
			optionalString(a.HealthcarePlan),
			a.ProviderName,
			boolLabel(a.SecondPhoneEnabled),
			string(a.SecondPhonePref),
			boolLabel(a.Cover),
			optionalString(a.CoveringProvider),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				f.Close()
				return nil, "", fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				f.Close()
				return nil, "", fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	// freeze the header row
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close workbook: %w", err)
	}

	filename := fmt.Sprintf("oncall-schedule-%s.xlsx", from.Format("2006-01"))
	return buf.Bytes(), filename, nil
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolLabel(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
