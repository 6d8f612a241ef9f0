package bracketservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/bracketeering/app/modules/bracket/application/parsers"
	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	bracketdb "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/infrastructure/repositories"
	"github.com/Black-And-White-Club/bracketeering/internal/observability"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BracketService implements the Service interface.
type BracketService struct {
	repo    bracketdb.Repository
	parsers parsers.ParserFactory
	opts    Options
	logger  *slog.Logger
	metrics observability.BracketMetrics
	tracer  trace.Tracer
	newID   func() uuid.UUID
	now     func() time.Time
}

// NewBracketService creates a new BracketService.
func NewBracketService(
	repo bracketdb.Repository,
	factory parsers.ParserFactory,
	opts Options,
	logger *slog.Logger,
	metrics observability.BracketMetrics,
	tracer trace.Tracer,
) *BracketService {
	if opts.Policy == "" {
		opts.Policy = PolicyAbort
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &BracketService{
		repo:    repo,
		parsers: factory,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		newID:   uuid.New,
		now:     time.Now,
	}
}

type runIDKey struct{}

// WithRunID stores the run id for log and span attributes.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id stored by WithRunID.
func RunIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey{}).(uuid.UUID)
	return id, ok
}

func runIDAttr(ctx context.Context) slog.Attr {
	id, _ := RunIDFromContext(ctx)
	return slog.String("run_id", id.String())
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[T any] func(ctx context.Context) (T, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	s *BracketService,
	ctx context.Context,
	operationName string,
	op operationFunc[T],
) (result T, err error) {
	runID, _ := RunIDFromContext(ctx)
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("run_id", runID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.DebugContext(ctx, operationName+" triggered",
		slog.String("operation", operationName),
		runIDAttr(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("operation", operationName),
				runIDAttr(ctx),
				slog.String("error", err.Error()),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			runIDAttr(ctx),
			slog.String("error", err.Error()),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	s.logger.DebugContext(ctx, operationName+" completed successfully",
		slog.String("operation", operationName),
		runIDAttr(ctx),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}

// Run loads, validates, scores and ranks one tournament. Nothing is returned
// unless every step succeeded.
func (s *BracketService) Run(ctx context.Context) (*Outcome, error) {
	runID := s.newID()
	ctx = WithRunID(ctx, runID)

	return withTelemetry(s, ctx, "Run", func(ctx context.Context) (*Outcome, error) {
		topology, err := s.LoadTopology(ctx)
		if err != nil {
			return nil, err
		}
		results, err := s.LoadResults(ctx, topology)
		if err != nil {
			return nil, err
		}
		predictions, rejected, err := s.LoadPredictions(ctx, topology)
		if err != nil {
			return nil, err
		}
		cards, err := s.ScorePredictions(ctx, topology, results, predictions)
		if err != nil {
			return nil, err
		}
		standings := bracketdomain.RankScorecards(cards)

		s.logger.InfoContext(ctx, "Brackets scored",
			runIDAttr(ctx),
			slog.Int("competitors", len(cards)),
			slog.Int("rejected", len(rejected)),
			slog.Int("rounds_reported", len(results)),
		)

		return &Outcome{
			RunID:       runID,
			GeneratedAt: s.now(),
			Topology:    topology,
			Results:     results,
			Scorecards:  cards,
			Standings:   standings,
			Rejected:    rejected,
		}, nil
	})
}

var _ Service = (*BracketService)(nil)
