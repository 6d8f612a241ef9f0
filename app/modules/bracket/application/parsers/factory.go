package parsers

import (
	"fmt"
	"path/filepath"
	"strings"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
)

// TopologyParser turns a start file into one entry per start slot.
type TopologyParser interface {
	Parse(data []byte) ([]bracketdomain.StartEntry, error)
}

// RecordParser turns a results or prediction file into a round record.
type RecordParser interface {
	Parse(data []byte) (bracketdomain.Record, error)
}

// ParserFactory defines the interface for creating parsers
type ParserFactory interface {
	GetTopologyParser(filename string) (TopologyParser, error)
	GetRecordParser(filename string) (RecordParser, error)
}

// Factory creates the appropriate parser based on file extension
type Factory struct{}

// NewFactory creates a new parser factory
func NewFactory() *Factory {
	return &Factory{}
}

// GetTopologyParser returns the start file parser for filename.
func (f *Factory) GetTopologyParser(filename string) (TopologyParser, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".txt", "":
		return NewTextParser(), nil
	case ".csv":
		return NewCSVParser(), nil
	case ".xlsx":
		return NewXLSXParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// GetRecordParser returns the round record parser for filename.
func (f *Factory) GetRecordParser(filename string) (RecordParser, error) {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".json" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return NewJSONParser(), nil
}

var _ ParserFactory = (*Factory)(nil)
