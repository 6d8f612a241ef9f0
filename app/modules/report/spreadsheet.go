package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	standingsSheet = "Standings"
	rejectedSheet  = "Rejected"
)

// GenerateStandingsWorkbook exports the rankings table, and the rejected
// predictions when there are any, as an XLSX workbook.
func GenerateStandingsWorkbook(view RankingsView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), standingsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := []interface{}{"Rank", "Name"}
	for _, name := range view.RoundNames {
		header = append(header, name)
	}
	header = append(header, "Total", "Potential")
	if err := setRow(f, standingsSheet, 1, header); err != nil {
		return nil, err
	}

	for i, row := range view.Rows {
		cells := []interface{}{row.Rank, row.Name}
		for _, score := range row.RoundScores {
			cells = append(cells, score)
		}
		cells = append(cells, row.Actual, row.Potential)
		if err := setRow(f, standingsSheet, i+2, cells); err != nil {
			return nil, err
		}
	}

	if len(view.Rejected) > 0 {
		if _, err := f.NewSheet(rejectedSheet); err != nil {
			return nil, fmt.Errorf("failed to add sheet %q: %w", rejectedSheet, err)
		}
		if err := setRow(f, rejectedSheet, 1, []interface{}{"Competitor", "File", "Reason"}); err != nil {
			return nil, err
		}
		for i, r := range view.Rejected {
			if err := setRow(f, rejectedSheet, i+2, []interface{}{r.Competitor, r.File, r.Reason}); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	axis, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
		return fmt.Errorf("failed to write row %d of %q: %w", row, sheet, err)
	}
	return nil
}
