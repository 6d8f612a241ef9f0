package bracketservice

import (
	"context"
	"sync"

	bracketdb "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/infrastructure/repositories"
	"github.com/Black-And-White-Club/bracketeering/internal/observability"
)

// ------------------------
// Fake Bracket Repo
// ------------------------

// FakeRepository provides a programmable stub for the bracketdb.Repository interface.
type FakeRepository struct {
	trace []string

	LoadStartFunc       func(ctx context.Context) (bracketdb.File, error)
	LoadResultsFunc     func(ctx context.Context) (bracketdb.File, error)
	LoadPredictionsFunc func(ctx context.Context) ([]bracketdb.File, error)
}

// NewFakeRepository initializes a new FakeRepository with an empty trace.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRepository) LoadStart(ctx context.Context) (bracketdb.File, error) {
	f.record("LoadStart")
	if f.LoadStartFunc != nil {
		return f.LoadStartFunc(ctx)
	}
	return bracketdb.File{}, nil
}

func (f *FakeRepository) LoadResults(ctx context.Context) (bracketdb.File, error) {
	f.record("LoadResults")
	if f.LoadResultsFunc != nil {
		return f.LoadResultsFunc(ctx)
	}
	return bracketdb.File{Name: "master", Path: "master.json", Data: []byte("[]")}, nil
}

func (f *FakeRepository) LoadPredictions(ctx context.Context) ([]bracketdb.File, error) {
	f.record("LoadPredictions")
	if f.LoadPredictionsFunc != nil {
		return f.LoadPredictionsFunc(ctx)
	}
	return nil, nil
}

// Ensure the fake actually satisfies the interface
var _ bracketdb.Repository = (*FakeRepository)(nil)

// ------------------------
// Fake Metrics
// ------------------------

// FakeMetrics counts the bracket level metrics and ignores the rest.
type FakeMetrics struct {
	observability.NoOpMetrics

	mu       sync.Mutex
	Scored   int
	Rejected map[string]int
	Failures map[string]int
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{Rejected: map[string]int{}, Failures: map[string]int{}}
}

func (m *FakeMetrics) RecordBracketScored(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Scored++
}

func (m *FakeMetrics) RecordBracketRejected(_ context.Context, rule string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejected[rule]++
}

func (m *FakeMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures[operation]++
}

var _ observability.BracketMetrics = (*FakeMetrics)(nil)
