package bracketdomain

import (
	"errors"
	"fmt"
)

// Domain errors. Callers match them with errors.Is; the typed errors below
// carry the offending line, round, matchup and team.
var (
	// ErrInvalidBracketConfig indicates an inconsistent bracket shape.
	ErrInvalidBracketConfig = errors.New("invalid bracket config")

	// ErrMalformedTopology indicates the start slots cannot form the configured field.
	ErrMalformedTopology = errors.New("malformed topology")

	// ErrInvalidBracket indicates a results or prediction record that breaks a structural rule.
	ErrInvalidBracket = errors.New("invalid bracket")
)

// TopologyError describes why the start slots were rejected. Line is 1-based
// and zero when the problem is with the field as a whole.
type TopologyError struct {
	Line   int
	Reason string
}

func (e *TopologyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d %s", e.Line, e.Reason)
	}
	return e.Reason
}

func (e *TopologyError) Unwrap() error { return ErrMalformedTopology }

// Rule names the structural check a record failed.
type Rule string

const (
	RuleRoundCount Rule = "round_count"
	RuleRoster     Rule = "roster"
	RuleUniqueness Rule = "uniqueness"
	RuleLineage    Rule = "lineage"
)

// ValidationError is returned by Validate for the first violated rule.
type ValidationError struct {
	Rule      Rule
	Round     int
	RoundName string
	Matchup   Matchup
	Team      TeamID
	msg       string
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Unwrap() error { return ErrInvalidBracket }
