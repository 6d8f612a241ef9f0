package bracketservice

import (
	"context"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
)

// Check validates the start file, the results (in-progress) and every
// prediction (final) without scoring. It keeps going past invalid records;
// only a start file that cannot be turned into a topology stops it, since
// nothing else can be checked without one. The error is reserved for a
// folder that cannot be listed.
func (s *BracketService) Check(ctx context.Context) ([]CheckResult, error) {
	return withTelemetry(s, ctx, "Check", func(ctx context.Context) ([]CheckResult, error) {
		var out []CheckResult

		start, err := s.repo.LoadStart(ctx)
		if err != nil {
			return []CheckResult{{File: start.Path, Err: err}}, nil
		}
		topology, err := s.parseTopology(start)
		out = append(out, CheckResult{File: start.Path, Err: err})
		if err != nil {
			return out, nil
		}

		results, err := s.repo.LoadResults(ctx)
		if err == nil {
			_, err = s.parseRecord(results, topology, bracketdomain.ModeInProgress)
		}
		out = append(out, CheckResult{File: results.Path, Err: err})

		files, err := s.repo.LoadPredictions(ctx)
		if err != nil {
			return out, err
		}
		for _, file := range files {
			_, err := s.parseRecord(file, topology, bracketdomain.ModeFinal)
			out = append(out, CheckResult{File: file.Path, Err: err})
		}
		return out, nil
	})
}
