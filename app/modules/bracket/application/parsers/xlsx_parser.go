package parsers

import (
	"bytes"
	"fmt"
	"strings"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXParser parses start slots kept in a spreadsheet. Only the first sheet is read.
type XLSXParser struct{}

// NewXLSXParser creates a new XLSX parser
func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

// Parse parses XLSX data into start entries.
func (p *XLSXParser) Parse(data []byte) ([]bracketdomain.StartEntry, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		if strings.Contains(err.Error(), "zip: not a valid zip file") {
			return nil, fmt.Errorf("failed to open XLSX file: %w. (Hint: If this is a CSV file, please ensure it has a .csv extension)", err)
		}
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	return rowsToEntries(rows)
}
