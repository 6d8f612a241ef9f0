package bracketdb

import "context"

// File is the raw content of one tournament input.
type File struct {
	// Name is the file name without its extension; for predictions it is the competitor.
	Name string
	Path string
	Data []byte
}

// Repository reads the inputs of one tournament.
type Repository interface {
	LoadStart(ctx context.Context) (File, error)
	LoadResults(ctx context.Context) (File, error)
	// LoadPredictions returns every readable prediction in competitor name order.
	LoadPredictions(ctx context.Context) ([]File, error)
}
