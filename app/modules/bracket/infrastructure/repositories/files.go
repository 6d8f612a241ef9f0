package bracketdb

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Default input file names inside a tournament folder.
const (
	DefaultStartFile   = "start.txt"
	DefaultResultsFile = "master.json"
)

const predictionExt = ".json"

// FileRepository reads a tournament folder: the start file, the results file
// and one *.json prediction per competitor.
type FileRepository struct {
	dir         string
	startFile   string
	resultsFile string
	logger      *slog.Logger
}

// NewFileRepository creates a repository over dir. Empty file names fall back
// to the defaults.
func NewFileRepository(dir, startFile, resultsFile string, logger *slog.Logger) *FileRepository {
	if startFile == "" {
		startFile = DefaultStartFile
	}
	if resultsFile == "" {
		resultsFile = DefaultResultsFile
	}
	return &FileRepository{
		dir:         dir,
		startFile:   startFile,
		resultsFile: resultsFile,
		logger:      logger,
	}
}

// Dir returns the tournament folder.
func (r *FileRepository) Dir() string { return r.dir }

func (r *FileRepository) LoadStart(ctx context.Context) (File, error) {
	return r.read(ctx, r.startFile)
}

func (r *FileRepository) LoadResults(ctx context.Context) (File, error) {
	return r.read(ctx, r.resultsFile)
}

// LoadPredictions lists the folder and reads every prediction. Files that
// cannot be opened are logged and skipped; a folder that cannot be listed is
// an error.
func (r *FileRepository) LoadPredictions(ctx context.Context) ([]File, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, &InputError{Path: r.dir, Err: err}
	}

	var out []File
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if entry.IsDir() || name == r.startFile || name == r.resultsFile {
			continue
		}
		competitor, ok := strings.CutSuffix(name, predictionExt)
		if !ok || competitor == "" {
			continue
		}

		file, err := r.read(ctx, name)
		if err != nil {
			r.logger.WarnContext(ctx, "Skipping unreadable prediction",
				slog.String("file", file.Path),
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, file)
	}

	slices.SortFunc(out, func(a, b File) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *FileRepository) read(ctx context.Context, name string) (File, error) {
	path := filepath.Join(r.dir, name)
	file := File{
		Name: strings.TrimSuffix(name, filepath.Ext(name)),
		Path: path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return file, &InputError{Path: path, Err: err}
	}
	file.Data = data

	r.logger.DebugContext(ctx, "Read tournament input",
		slog.String("file", path),
		slog.Int("bytes", len(data)),
	)
	return file, nil
}

var _ Repository = (*FileRepository)(nil)
