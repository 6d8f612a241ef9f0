package parsers

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension no parser handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrMalformedRecord indicates round data that is not an array of arrays of team identifiers.
	ErrMalformedRecord = errors.New("malformed round record")
)
