// Package config loads qedcheck settings from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/locator"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/parser"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/runner"
	"gopkg.in/yaml.v3"
)

// Config holds all qedcheck configuration.
type Config struct {
	// Workbook is the serviceability calculator to drive.
	Workbook string `yaml:"workbook"`
	// Results is where the JSON result list is written.
	Results string `yaml:"results"`
	// Analysis is where analyze writes its JSON output, if set.
	Analysis string `yaml:"analysis"`
	// ScenariosFile replaces the built-in fixtures when set.
	ScenariosFile string `yaml:"scenarios_file"`

	// Variant is file or live.
	Variant string `yaml:"variant"`
	// Tolerance overrides the variant's match tolerance (percent).
	Tolerance   float64 `yaml:"tolerance"`
	SettleDelay string  `yaml:"settle_delay"`

	Regions  RegionsConfig  `yaml:"regions"`
	Fallback FallbackConfig `yaml:"fallback"`
	Locator  LocatorConfig  `yaml:"locator"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RegionsConfig names the sheets of the two calculation paths.
type RegionsConfig struct {
	Single RegionConfig `yaml:"single"`
	Dual   RegionConfig `yaml:"dual"`
}

// RegionConfig locates one region.
type RegionConfig struct {
	Sheet      string `yaml:"sheet"`
	ResultCell string `yaml:"result_cell"`
}

// FallbackConfig bounds the scan used when a result cell is unusable.
type FallbackConfig struct {
	Range string  `yaml:"range"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// LocatorConfig configures analyze.
type LocatorConfig struct {
	Sheet          string   `yaml:"sheet"`
	LabelRange     string   `yaml:"label_range"`
	NumericRange   string   `yaml:"numeric_range"`
	Threshold      float64  `yaml:"threshold"`
	Limit          int      `yaml:"limit"`
	InputKeywords  []string `yaml:"input_keywords"`
	OutputKeywords []string `yaml:"output_keywords"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Workbook:    "qed_serviceability_calculator.xlsm",
		Results:     filepath.Join("docs", "qed_test_results.json"),
		Variant:     string(qedcheck.VariantFile),
		SettleDelay: "1s",

		Regions: RegionsConfig{
			Single: RegionConfig{Sheet: "Single income", ResultCell: "F42"},
			Dual:   RegionConfig{Sheet: "Dual income", ResultCell: "F43"},
		},

		Fallback: FallbackConfig{
			Range: "A1:S49",
			Min:   100000,
			Max:   10000000,
		},

		Locator: LocatorConfig{
			LabelRange:     "A1:Y99",
			NumericRange:   "A1:Y49",
			Threshold:      100000,
			Limit:          10,
			InputKeywords:  locator.DefaultInputKeywords,
			OutputKeywords: locator.DefaultOutputKeywords,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("QEDCHECK_WORKBOOK"); v != "" {
		c.Workbook = v
	}
	if v := os.Getenv("QEDCHECK_RESULTS"); v != "" {
		c.Results = v
	}
	if v := os.Getenv("QEDCHECK_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := os.Getenv("QEDCHECK_TOLERANCE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid QEDCHECK_TOLERANCE %q: %w", v, err)
		}
		c.Tolerance = t
	}
	if v := os.Getenv("QEDCHECK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// CheckOptions converts the configuration into run options.
func (c *Config) CheckOptions() (qedcheck.Options, error) {
	variant := qedcheck.Variant(c.Variant)
	if !variant.Valid() {
		return qedcheck.Options{}, fmt.Errorf("%w: %q (must be file or live)", qedcheck.ErrInvalidVariant, c.Variant)
	}
	if c.Tolerance < 0 {
		return qedcheck.Options{}, fmt.Errorf("tolerance must not be negative: %v", c.Tolerance)
	}

	settle, err := time.ParseDuration(c.SettleDelay)
	if err != nil {
		return qedcheck.Options{}, fmt.Errorf("invalid settle_delay: %w", err)
	}

	fallback, err := parser.ParseRange(c.Fallback.Range)
	if err != nil {
		return qedcheck.Options{}, fmt.Errorf("invalid fallback range: %w", err)
	}

	layouts := runner.DefaultLayouts()
	applyRegion(&layouts.Single, c.Regions.Single)
	applyRegion(&layouts.Dual, c.Regions.Dual)

	return qedcheck.Options{
		Variant:     variant,
		Tolerance:   c.Tolerance,
		SettleDelay: settle,
		Runner: runner.Config{
			Path:         c.Workbook,
			Layouts:      layouts,
			FallbackArea: fallback,
			FallbackMin:  c.Fallback.Min,
			FallbackMax:  c.Fallback.Max,
		},
	}, nil
}

func applyRegion(l *runner.Layout, rc RegionConfig) {
	if rc.Sheet != "" {
		l.Sheet = rc.Sheet
	}
	if rc.ResultCell != "" {
		sheet, cell := parser.SplitReference(rc.ResultCell)
		if sheet != "" {
			l.Sheet = sheet
		}
		l.Result = cell
	}
}

// AnalyzeOptions converts the configuration into locator options.
func (c *Config) AnalyzeOptions() (qedcheck.AnalyzeOptions, error) {
	labels, err := parser.ParseRange(c.Locator.LabelRange)
	if err != nil {
		return qedcheck.AnalyzeOptions{}, fmt.Errorf("invalid label_range: %w", err)
	}
	numeric, err := parser.ParseRange(c.Locator.NumericRange)
	if err != nil {
		return qedcheck.AnalyzeOptions{}, fmt.Errorf("invalid numeric_range: %w", err)
	}

	return qedcheck.AnalyzeOptions{
		Sheet: c.Locator.Sheet,
		Locator: locator.Options{
			LabelArea:      labels,
			NumericArea:    numeric,
			Threshold:      c.Locator.Threshold,
			Limit:          c.Locator.Limit,
			InputKeywords:  c.Locator.InputKeywords,
			OutputKeywords: c.Locator.OutputKeywords,
		},
	}, nil
}
