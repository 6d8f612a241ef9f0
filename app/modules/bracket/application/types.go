package bracketservice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	"github.com/google/uuid"
)

// Policy decides what happens to a prediction that fails validation.
type Policy string

const (
	// PolicyAbort stops the run at the first invalid prediction.
	PolicyAbort Policy = "abort"
	// PolicySkip logs the invalid prediction, reports it as rejected and scores the rest.
	PolicySkip Policy = "skip"
)

// ParsePolicy accepts abort or skip, case-insensitively. Empty means abort.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyAbort, nil
	case PolicyAbort, PolicySkip:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Options configure a BracketService.
type Options struct {
	Bracket bracketdomain.BracketConfig
	Policy  Policy
	// Workers bounds how many predictions are scored at once.
	Workers int
}

// Prediction is a competitor's validated record.
type Prediction struct {
	Competitor string
	File       string
	Record     bracketdomain.Record
}

// Rejection is a prediction dropped under PolicySkip.
type Rejection struct {
	Competitor string
	File       string
	Err        error
}

// Rule returns the validation rule the prediction broke, if any.
func (r Rejection) Rule() bracketdomain.Rule {
	var verr *bracketdomain.ValidationError
	if errors.As(r.Err, &verr) {
		return verr.Rule
	}
	return ""
}

// Reason is the message shown next to a rejected prediction.
func (r Rejection) Reason() string {
	var recErr *RecordError
	if errors.As(r.Err, &recErr) {
		return recErr.Err.Error()
	}
	return r.Err.Error()
}

// Outcome is everything a report needs from one run.
type Outcome struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	Topology    *bracketdomain.Topology
	Results     bracketdomain.Record
	Scorecards  []bracketdomain.Scorecard
	Standings   []bracketdomain.Standing
	Rejected    []Rejection
}

// Scorecard returns the card of competitor.
func (o *Outcome) Scorecard(competitor string) (bracketdomain.Scorecard, bool) {
	for _, card := range o.Scorecards {
		if card.Competitor == competitor {
			return card, true
		}
	}
	return bracketdomain.Scorecard{}, false
}

// CheckResult is the validation verdict for one input file.
type CheckResult struct {
	File string
	Err  error
}

// OK reports whether the file passed.
func (c CheckResult) OK() bool { return c.Err == nil }
