package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	bracketservice "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/application"
)

// ErrWriteFailed indicates the report could not be written to the output folder.
var ErrWriteFailed = errors.New("report write failed")

// Output file names.
const (
	IndexFile       = "index.html"
	StylesheetFile  = "style.css"
	ChartFile       = "standings.png"
	SpreadsheetFile = "standings.xlsx"
)

// Options select the optional report artifacts.
type Options struct {
	Chart       bool
	Spreadsheet bool
}

// Writer renders an Outcome into an output folder.
type Writer struct {
	dir    string
	opts   Options
	logger *slog.Logger
}

// NewWriter creates a report writer for dir.
func NewWriter(dir string, opts Options, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, opts: opts, logger: logger}
}

// Write renders every page in memory first and only then touches the output
// folder, so a rendering failure leaves no partial report behind.
func (w *Writer) Write(ctx context.Context, outcome *bracketservice.Outcome) error {
	files, err := w.render(outcome)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, w.dir, err)
	}
	for _, f := range files {
		path := filepath.Join(w.dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
		}
	}

	w.logger.InfoContext(ctx, "Report written",
		slog.String("run_id", outcome.RunID.String()),
		slog.String("dir", w.dir),
		slog.Int("files", len(files)),
	)
	return nil
}

type outputFile struct {
	name string
	data []byte
}

func (w *Writer) render(outcome *bracketservice.Outcome) ([]outputFile, error) {
	css, err := Stylesheet()
	if err != nil {
		return nil, err
	}

	rankings := NewRankingsView(outcome, w.opts.Chart)
	index, err := RenderRankings(rankings)
	if err != nil {
		return nil, err
	}
	files := []outputFile{{name: StylesheetFile, data: css}, {name: IndexFile, data: index}}

	for _, standing := range outcome.Standings {
		card, ok := outcome.Scorecard(standing.Name)
		if !ok {
			return nil, fmt.Errorf("no scorecard for %s", standing.Name)
		}
		page, err := RenderBracket(NewBracketView(outcome, card, standing))
		if err != nil {
			return nil, err
		}
		files = append(files, outputFile{name: pageName(standing.Name), data: page})
	}

	if w.opts.Chart {
		png, err := GenerateStandingsChart(outcome.Standings, DefaultPalette)
		if err != nil {
			return nil, fmt.Errorf("failed to render chart: %w", err)
		}
		files = append(files, outputFile{name: ChartFile, data: png})
	}
	if w.opts.Spreadsheet {
		xlsx, err := GenerateStandingsWorkbook(rankings)
		if err != nil {
			return nil, err
		}
		files = append(files, outputFile{name: SpreadsheetFile, data: xlsx})
	}
	return files, nil
}
