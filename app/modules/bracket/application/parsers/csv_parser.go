package parsers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
)

// CSVParser parses start slots exported as CSV
type CSVParser struct{}

// NewCSVParser creates a new CSV parser
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse parses CSV data into start entries.
func (p *CSVParser) Parse(data []byte) ([]bracketdomain.StartEntry, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &bracketdomain.TopologyError{Line: perr.Line, Reason: fmt.Sprintf("is not valid CSV: %v", perr.Err)}
			}
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		// csv skips blank lines, keep the row index aligned with the file line
		for len(rows) < line-1 {
			rows = append(rows, nil)
		}
		rows = append(rows, record)
	}
	return rowsToEntries(rows)
}
