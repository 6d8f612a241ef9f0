package bracketservice

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	"golang.org/x/sync/errgroup"
)

// ScorePredictions scores each prediction on a bounded worker pool. Every
// worker reads the same results and writes only its own slot of the output,
// which is in competitor name order.
func (s *BracketService) ScorePredictions(
	ctx context.Context,
	t *bracketdomain.Topology,
	results bracketdomain.Record,
	predictions []Prediction,
) ([]bracketdomain.Scorecard, error) {
	return withTelemetry(s, ctx, "ScorePredictions", func(ctx context.Context) ([]bracketdomain.Scorecard, error) {
		ordered := slices.Clone(predictions)
		slices.SortFunc(ordered, func(a, b Prediction) int { return cmp.Compare(a.Competitor, b.Competitor) })

		scorer := bracketdomain.NewScorer(t, results)
		cards := make([]bracketdomain.Scorecard, len(ordered))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.Workers)
		for i, p := range ordered {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				cards[i] = scorer.Score(p.Competitor, p.Record)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, card := range cards {
			s.metrics.RecordBracketScored(ctx)
			for verdict, n := range card.CountVerdicts() {
				s.metrics.RecordPicks(ctx, verdict.String(), n)
			}
			s.logger.DebugContext(ctx, "Scored prediction",
				runIDAttr(ctx),
				slog.String("competitor", card.Competitor),
				slog.Int("actual", card.Actual),
				slog.Int("potential", card.Potential),
				slog.Int("pending", card.Pending),
			)
		}
		return cards, nil
	})
}
