package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
)

// JSONParser reads a round record: a JSON array holding one array of team
// identifiers per round.
type JSONParser struct{}

// NewJSONParser creates a new round record parser
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes data into a record. An empty array is a valid record of a
// tournament that has not started.
func (p *JSONParser) Parse(data []byte) (bracketdomain.Record, error) {
	var rounds []json.RawMessage
	if err := json.Unmarshal(data, &rounds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if rounds == nil {
		return nil, fmt.Errorf("%w: expected an array of rounds", ErrMalformedRecord)
	}

	record := make(bracketdomain.Record, 0, len(rounds))
	for i, raw := range rounds {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("%w: round %d is null", ErrMalformedRecord, i)
		}
		var winners []bracketdomain.TeamID
		if err := json.Unmarshal(raw, &winners); err != nil {
			return nil, fmt.Errorf("%w: round %d: %v", ErrMalformedRecord, i, err)
		}
		if winners == nil {
			winners = []bracketdomain.TeamID{}
		}
		record = append(record, winners)
	}
	return record, nil
}
