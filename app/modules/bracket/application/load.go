package bracketservice

import (
	"context"
	"errors"
	"log/slog"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	bracketdb "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/infrastructure/repositories"
)

// LoadTopology reads and parses the start file.
func (s *BracketService) LoadTopology(ctx context.Context) (*bracketdomain.Topology, error) {
	return withTelemetry(s, ctx, "LoadTopology", func(ctx context.Context) (*bracketdomain.Topology, error) {
		file, err := s.repo.LoadStart(ctx)
		if err != nil {
			return nil, err
		}
		topology, err := s.parseTopology(file)
		if err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "Topology loaded",
			runIDAttr(ctx),
			slog.String("file", file.Path),
			slog.Int("teams", len(topology.Teams())),
			slog.Int("slots", len(topology.Slots())),
		)
		return topology, nil
	})
}

func (s *BracketService) parseTopology(file bracketdb.File) (*bracketdomain.Topology, error) {
	parser, err := s.parsers.GetTopologyParser(file.Path)
	if err != nil {
		return nil, recordError(file.Path, err)
	}
	entries, err := parser.Parse(file.Data)
	if err != nil {
		return nil, recordError(file.Path, err)
	}
	topology, err := bracketdomain.NewTopology(s.opts.Bracket, entries)
	if err != nil {
		return nil, recordError(file.Path, err)
	}
	return topology, nil
}

// LoadResults reads the authoritative record. It may be partial but must be
// structurally valid; an invalid record aborts the run.
func (s *BracketService) LoadResults(ctx context.Context, t *bracketdomain.Topology) (bracketdomain.Record, error) {
	return withTelemetry(s, ctx, "LoadResults", func(ctx context.Context) (bracketdomain.Record, error) {
		file, err := s.repo.LoadResults(ctx)
		if err != nil {
			return nil, err
		}
		results, err := s.parseRecord(file, t, bracketdomain.ModeInProgress)
		if err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "Results loaded",
			runIDAttr(ctx),
			slog.String("file", file.Path),
			slog.Int("rounds", len(results)),
		)
		return results, nil
	})
}

func (s *BracketService) parseRecord(file bracketdb.File, t *bracketdomain.Topology, mode bracketdomain.ValidationMode) (bracketdomain.Record, error) {
	parser, err := s.parsers.GetRecordParser(file.Path)
	if err != nil {
		return nil, recordError(file.Path, err)
	}
	record, err := parser.Parse(file.Data)
	if err != nil {
		return nil, recordError(file.Path, err)
	}
	if err := bracketdomain.Validate(t, record, mode); err != nil {
		return nil, recordError(file.Path, err)
	}
	return record, nil
}

// LoadPredictions reads every prediction and validates it as a final record.
// Undecodable files always abort. A structurally invalid prediction aborts
// under PolicyAbort and is returned as a Rejection under PolicySkip.
func (s *BracketService) LoadPredictions(ctx context.Context, t *bracketdomain.Topology) ([]Prediction, []Rejection, error) {
	type loaded struct {
		predictions []Prediction
		rejected    []Rejection
	}

	out, err := withTelemetry(s, ctx, "LoadPredictions", func(ctx context.Context) (loaded, error) {
		files, err := s.repo.LoadPredictions(ctx)
		if err != nil {
			return loaded{}, err
		}

		var res loaded
		for _, file := range files {
			record, err := s.parseRecord(file, t, bracketdomain.ModeFinal)
			if err == nil {
				res.predictions = append(res.predictions, Prediction{Competitor: file.Name, File: file.Path, Record: record})
				continue
			}
			if s.opts.Policy != PolicySkip || !errors.Is(err, bracketdomain.ErrInvalidBracket) {
				return loaded{}, err
			}

			rejection := Rejection{Competitor: file.Name, File: file.Path, Err: err}
			s.logger.WarnContext(ctx, "Rejected invalid prediction",
				runIDAttr(ctx),
				slog.String("competitor", file.Name),
				slog.String("file", file.Path),
				slog.String("rule", string(rejection.Rule())),
				slog.String("error", rejection.Reason()),
			)
			s.metrics.RecordBracketRejected(ctx, string(rejection.Rule()))
			res.rejected = append(res.rejected, rejection)
		}

		s.logger.InfoContext(ctx, "Predictions loaded",
			runIDAttr(ctx),
			slog.Int("accepted", len(res.predictions)),
			slog.Int("rejected", len(res.rejected)),
		)
		return res, nil
	})
	return out.predictions, out.rejected, err
}
