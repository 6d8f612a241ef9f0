package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v2"

	bracketservice "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/application"
	"github.com/Black-And-White-Club/bracketeering/app/modules/bracket/application/parsers"
	bracketdb "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/infrastructure/repositories"
	"github.com/Black-And-White-Club/bracketeering/app/modules/report"
	"github.com/Black-And-White-Club/bracketeering/config"
	"github.com/Black-And-White-Club/bracketeering/internal/observability"
)

var configFlag = &cli.StringFlag{
	Name:  "config",
	Value: "config.yaml",
	Usage: "path to the configuration file",
}

func newScoreCommand() *cli.Command {
	return &cli.Command{
		Name:         "score",
		Usage:        "score every prediction in FOLDER and write the report",
		ArgsUsage:    "FOLDER",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			configFlag,
			&cli.StringFlag{Name: "output", Usage: "report folder (default FOLDER/output)"},
			&cli.StringFlag{Name: "policy", Usage: "what to do with an invalid prediction: abort or skip"},
			&cli.IntFlag{Name: "workers", Usage: "predictions scored in parallel"},
		},
		Action: func(c *cli.Context) error {
			env, err := newEnvironment(c)
			if err != nil {
				return err
			}
			defer env.flushMetrics(c)

			outcome, err := env.service.Run(c.Context)
			if err != nil {
				return err
			}

			writer := report.NewWriter(env.cfg.OutputDir(), report.Options{
				Chart:       env.cfg.Output.Chart,
				Spreadsheet: env.cfg.Output.Spreadsheet,
			}, env.logger)
			if err := writer.Write(c.Context, outcome); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "scored %d brackets", len(outcome.Scorecards))
			if n := len(outcome.Rejected); n > 0 {
				fmt.Fprintf(c.App.Writer, ", rejected %d", n)
			}
			fmt.Fprintf(c.App.Writer, "; report written to %s\n", filepath.Join(env.cfg.OutputDir(), report.IndexFile))
			return nil
		},
	}
}

func newValidateCommand() *cli.Command {
	return &cli.Command{
		Name:         "validate",
		Usage:        "check the start file, the results and every prediction in FOLDER",
		ArgsUsage:    "FOLDER",
		OnUsageError: onUsageError,
		Flags:        []cli.Flag{configFlag},
		Action: func(c *cli.Context) error {
			env, err := newEnvironment(c)
			if err != nil {
				return err
			}
			defer env.flushMetrics(c)

			results, err := env.service.Check(c.Context)
			code := printCheck(c.App.Writer, c.App.ErrWriter, results)
			if err != nil {
				return err
			}
			if code != 0 {
				return cli.Exit("", code)
			}
			return nil
		},
	}
}

// printCheck writes one line per file and returns the exit status of the
// first failure.
func printCheck(stdout, stderr io.Writer, results []bracketservice.CheckResult) int {
	code := 0
	for _, res := range results {
		if res.OK() {
			fmt.Fprintf(stdout, "ok: %s\n", filepath.Base(res.File))
			continue
		}
		fmt.Fprintln(stderr, errorLine(res.Err))
		if code == 0 {
			code = exitCode(res.Err)
		}
	}
	return code
}

type environment struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.PrometheusMetrics
	service *bracketservice.BracketService
}

// newEnvironment loads configuration, applies the command line on top of it
// and wires the service.
func newEnvironment(c *cli.Context) (*environment, error) {
	cfg, err := config.LoadConfig(c.String(configFlag.Name))
	if err != nil {
		return nil, &usageError{msg: fmt.Sprintf("failed to load config: %v", err)}
	}

	if c.NArg() > 1 {
		return nil, &usageError{msg: fmt.Sprintf("%s takes a single FOLDER, got %d arguments", c.Command.Name, c.NArg())}
	}
	if folder := c.Args().First(); folder != "" {
		cfg.Data.Dir = folder
	}
	if cfg.Data.Dir == "" {
		return nil, &usageError{msg: fmt.Sprintf("%s requires a FOLDER argument", c.Command.Name)}
	}
	if c.IsSet("output") {
		cfg.Output.Dir = c.String("output")
	}
	if c.IsSet("policy") {
		cfg.Scoring.InvalidPredictionPolicy = c.String("policy")
	}
	if c.IsSet("workers") {
		cfg.Scoring.Workers = c.Int("workers")
	}
	if err := cfg.Validate(); err != nil {
		return nil, &usageError{msg: err.Error()}
	}

	logger, err := observability.NewLogger(c.App.ErrWriter, cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	bracket, err := cfg.ToBracketConfig()
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	policy, err := bracketservice.ParsePolicy(cfg.Scoring.InvalidPredictionPolicy)
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}

	metrics := observability.NewPrometheusMetrics()
	repo := bracketdb.NewFileRepository(cfg.Data.Dir, cfg.Data.StartFile, cfg.Data.ResultsFile, logger)
	service := bracketservice.NewBracketService(
		repo,
		parsers.NewFactory(),
		bracketservice.Options{
			Bracket: bracket,
			Policy:  policy,
			Workers: cfg.Scoring.Workers,
		},
		logger,
		metrics,
		observability.Tracer(),
	)

	logger.DebugContext(c.Context, "Configuration loaded",
		slog.String("data_dir", cfg.Data.Dir),
		slog.String("output_dir", cfg.OutputDir()),
		slog.String("policy", string(policy)),
		slog.Int("workers", cfg.Scoring.Workers),
	)

	return &environment{cfg: cfg, logger: logger, metrics: metrics, service: service}, nil
}

func (e *environment) flushMetrics(c *cli.Context) {
	path := e.cfg.Observability.MetricsFile
	if path == "" {
		return
	}
	if err := e.metrics.WriteTextfile(path); err != nil {
		e.logger.WarnContext(c.Context, "Failed to write metrics file",
			slog.String("file", path),
			slog.String("error", err.Error()),
		)
	}
}
