package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	"github.com/Black-And-White-Club/bracketeering/internal/observability"
)

// Config struct to hold the configuration settings
type Config struct {
	Data          DataConfig          `yaml:"data"`
	Bracket       BracketConfig       `yaml:"bracket"`
	Scoring       ScoringConfig       `yaml:"scoring"`
	Output        OutputConfig        `yaml:"output"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// DataConfig locates the tournament inputs.
type DataConfig struct {
	Dir         string `yaml:"dir"`
	StartFile   string `yaml:"start_file"`
	ResultsFile string `yaml:"results_file"`
}

// BracketConfig holds the tournament shape. Empty values mean the 64+8 field.
type BracketConfig struct {
	SlotCount          int      `yaml:"slot_count"`
	QualifyingMatchups *int     `yaml:"qualifying_matchups"`
	RoundNames         []string `yaml:"round_names"`
	SeedCycle          []int    `yaml:"seed_cycle"`
}

// Invalid prediction policies.
const (
	PolicyAbort = "abort"
	PolicySkip  = "skip"
)

// ScoringConfig holds scoring settings.
type ScoringConfig struct {
	InvalidPredictionPolicy string `yaml:"invalid_prediction_policy"` // abort|skip
	Workers                 int    `yaml:"workers"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Dir         string `yaml:"dir"` // defaults to <data.dir>/output
	Chart       bool   `yaml:"chart"`
	Spreadsheet bool   `yaml:"spreadsheet"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`   // text|json
	MetricsFile string `yaml:"metrics_file"` // optional; empty disables the textfile dump
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			StartFile:   "start.txt",
			ResultsFile: "master.json",
		},
		Scoring: ScoringConfig{
			InvalidPredictionPolicy: PolicyAbort,
			Workers:                 4,
		},
		Output: OutputConfig{
			Chart:       true,
			Spreadsheet: true,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: observability.FormatText,
		},
	}
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFromEnv loads the defaults overridden by environment variables.
func loadConfigFromEnv() (*Config, error) {
	cfg := Default()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("BRACKET_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("BRACKET_START_FILE"); v != "" {
		cfg.Data.StartFile = v
	}
	if v := os.Getenv("BRACKET_RESULTS_FILE"); v != "" {
		cfg.Data.ResultsFile = v
	}
	if v := os.Getenv("BRACKET_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("BRACKET_INVALID_POLICY"); v != "" {
		cfg.Scoring.InvalidPredictionPolicy = v
	}
	if v := os.Getenv("BRACKET_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BRACKET_WORKERS value: %v", err)
		}
		cfg.Scoring.Workers = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
	if v := os.Getenv("METRICS_FILE"); v != "" {
		cfg.Observability.MetricsFile = v
	}
	return nil
}

// Validate rejects settings no run could use.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Scoring.InvalidPredictionPolicy)) {
	case "", PolicyAbort, PolicySkip:
	default:
		return fmt.Errorf("scoring.invalid_prediction_policy: unknown policy %q", c.Scoring.InvalidPredictionPolicy)
	}
	if c.Scoring.Workers < 1 {
		return fmt.Errorf("scoring.workers must be positive, got %d", c.Scoring.Workers)
	}
	if _, err := observability.ParseLevel(c.Observability.LogLevel); err != nil {
		return fmt.Errorf("observability.log_level: %w", err)
	}
	switch strings.ToLower(c.Observability.LogFormat) {
	case "", observability.FormatText, observability.FormatJSON:
	default:
		return fmt.Errorf("observability.log_format: unknown format %q", c.Observability.LogFormat)
	}
	if _, err := c.ToBracketConfig(); err != nil {
		return fmt.Errorf("bracket: %w", err)
	}
	return nil
}

// OutputDir is where the report is written.
func (c *Config) OutputDir() string {
	if c.Output.Dir != "" {
		return c.Output.Dir
	}
	return filepath.Join(c.Data.Dir, "output")
}

// ToBracketConfig builds the domain bracket shape. Without explicit round
// names a non-default slot count gets generic "round N" names.
func (c *Config) ToBracketConfig() (bracketdomain.BracketConfig, error) {
	b := c.Bracket
	slots := b.SlotCount
	if slots == 0 {
		slots = bracketdomain.DefaultSlotCount
	}
	qualifying := bracketdomain.DefaultQualifyingMatchups
	if b.QualifyingMatchups != nil {
		qualifying = *b.QualifyingMatchups
	}

	names := b.RoundNames
	if len(names) == 0 {
		if slots == bracketdomain.DefaultSlotCount {
			names = bracketdomain.DefaultRoundNames
		} else {
			for r := 0; 1<<r <= slots; r++ {
				names = append(names, fmt.Sprintf("round %d", r))
			}
		}
	}

	cycle := b.SeedCycle
	if len(cycle) == 0 {
		cycle = bracketdomain.DefaultSeedCycle
	}
	return bracketdomain.NewBracketConfig(slots, qualifying, names, cycle)
}
