package bracketservice

import (
	"context"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
)

// Service defines the interface for the BracketService.
type Service interface {
	// Reads the start file and builds the topology.
	LoadTopology(ctx context.Context) (*bracketdomain.Topology, error)

	// Reads the authoritative results and validates them as an in-progress record.
	LoadResults(ctx context.Context, t *bracketdomain.Topology) (bracketdomain.Record, error)

	// Reads every prediction, validates it as a final record and applies the invalid-prediction policy.
	LoadPredictions(ctx context.Context, t *bracketdomain.Topology) ([]Prediction, []Rejection, error)

	// Scores the predictions against the results, in competitor name order.
	ScorePredictions(ctx context.Context, t *bracketdomain.Topology, results bracketdomain.Record, predictions []Prediction) ([]bracketdomain.Scorecard, error)

	// Runs the whole pipeline.
	Run(ctx context.Context) (*Outcome, error)

	// Validates every input and reports one result per file.
	Check(ctx context.Context) ([]CheckResult, error)
}
