// Package runner drives scenario fixtures through a serviceability
// workbook and reads back the maximum loan it computes.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/locator"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/parser"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/workbook"
	"go.uber.org/zap"
)

// Config configures a Runner.
type Config struct {
	// Path is the workbook every scenario is run against.
	Path    string
	Layouts Layouts
	// FallbackArea is scanned for a large number when the result cell has
	// no usable value.
	FallbackArea models.Area
	// FallbackMin and FallbackMax are exclusive bounds for fallback values.
	FallbackMin float64
	FallbackMax float64
}

// DefaultConfig returns the calculator layouts and a fallback scan of
// A1:S49 for values between 100000 and 10000000.
func DefaultConfig(path string) Config {
	return Config{
		Path:         path,
		Layouts:      DefaultLayouts(),
		FallbackArea: parser.MustParseRange("A1:S49"),
		FallbackMin:  100000,
		FallbackMax:  10000000,
	}
}

// Runner runs scenarios one at a time. Each run opens the workbook,
// writes the scenario, recalculates, reads the result and closes the
// workbook before the next run starts.
type Runner struct {
	opener workbook.Opener
	cfg    Config
	logger *zap.Logger
}

// New creates a Runner. A nil logger disables logging.
func New(opener workbook.Opener, cfg Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{opener: opener, cfg: cfg, logger: logger}
}

// Report collects the outcome of a pass over a fixture set.
type Report struct {
	// Results holds one record per scenario that completed, including
	// those without a usable workbook value.
	Results []models.Result
	// Failures holds the scenarios that were skipped.
	Failures []*ScenarioError
}

// RunAll runs every scenario in order. Scenario failures are recorded in
// the report and the pass continues. A missing workbook or a done context
// aborts the pass.
func (r *Runner) RunAll(ctx context.Context, scenarios []models.Scenario) (*Report, error) {
	report := &Report{}
	for _, s := range scenarios {
		res, err := r.Run(ctx, s)
		if err != nil {
			if errors.Is(err, workbook.ErrNotFound) || ctx.Err() != nil {
				return report, err
			}
			var se *ScenarioError
			if !errors.As(err, &se) {
				se = &ScenarioError{Scenario: s.Name, Err: err}
			}
			r.logger.Error("scenario failed",
				zap.String("scenario", s.Name),
				zap.Stringer("stage", se.Stage),
				zap.Error(se.Err))
			report.Failures = append(report.Failures, se)
			continue
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// Run runs one scenario. Errors are returned as *ScenarioError.
func (r *Runner) Run(ctx context.Context, s models.Scenario) (res models.Result, err error) {
	region := models.RegionFor(s)
	layout := r.cfg.Layouts.For(region)
	log := r.logger.With(zap.String("scenario", s.Name), zap.String("sheet", layout.Sheet))

	stage := StagePending
	advance := func(next Stage) {
		stage = next
		log.Debug("stage reached", zap.Stringer("stage", stage))
	}
	fail := func(e error) error {
		return &ScenarioError{Scenario: s.Name, Stage: stage, Err: e}
	}

	log.Info("running scenario", zap.String("region", string(region)))

	wb, err := r.opener.Open(ctx, r.cfg.Path)
	if err != nil {
		return models.Result{}, fail(err)
	}
	advance(StageOpened)
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			log.Warn("close workbook", zap.Error(cerr))
			return
		}
		if err == nil {
			advance(StageClosed)
		}
	}()

	if err := r.write(wb, layout, Defaults()); err != nil {
		return models.Result{}, fail(err)
	}
	advance(StageDefaultsWritten)

	if err := r.write(wb, layout, Inputs(s)); err != nil {
		return models.Result{}, fail(err)
	}
	advance(StageInputsWritten)

	if err := wb.Recalculate(ctx); err != nil {
		return models.Result{}, fail(fmt.Errorf("recalculate: %w", err))
	}
	advance(StageRecalculated)

	value, cell, fallback, err := r.readResult(wb, layout, log)
	if err != nil {
		return models.Result{}, fail(err)
	}
	advance(StageResultRead)

	res = models.Result{
		ScenarioName:   s.Name,
		WorkbookResult: value,
		AppResult:      s.AppResult,
		ExpectedMin:    s.Expected.Min,
		ExpectedMax:    s.Expected.Max,
		WorksheetUsed:  layout.Sheet,
		ResultCell:     cell,
		Fallback:       fallback,
	}
	if value != nil {
		log.Info("maximum loan read",
			zap.String("cell", cell),
			zap.Float64("value", *value),
			zap.Bool("fallback", fallback))
	}
	return res, nil
}

func (r *Runner) write(wb workbook.Workbook, layout Layout, assignments []Assignment) error {
	for _, a := range assignments {
		cell, ok := layout.Cells[a.Field]
		if !ok {
			return fmt.Errorf("layout for %q has no cell for %s", layout.Sheet, a.Field)
		}
		if err := wb.SetCell(layout.Sheet, cell, a.Value); err != nil {
			return fmt.Errorf("write %s to %s!%s: %w", a.Field, layout.Sheet, cell, err)
		}
	}
	return nil
}

// readResult reads the designated result cell and falls back to the
// largest plausible loan amount on the sheet. A nil value with a nil error
// means nothing usable was found.
func (r *Runner) readResult(wb workbook.Workbook, layout Layout, log *zap.Logger) (value *float64, cell string, fallback bool, err error) {
	raw, err := wb.GetCell(layout.Sheet, layout.Result)
	if err != nil {
		return nil, "", false, fmt.Errorf("read result %s!%s: %w", layout.Sheet, layout.Result, err)
	}
	if v, ok := parser.ParseNumber(raw); ok && v > 0 {
		return &v, layout.Result, false, nil
	}

	log.Warn("result cell has no usable value, scanning sheet",
		zap.String("cell", layout.Result),
		zap.String("raw", raw),
		zap.String("area", parser.FormatRange(r.cfg.FallbackArea)))

	grid, err := parser.ReadGrid(wb, layout.Sheet, r.cfg.FallbackArea)
	if err != nil {
		return nil, "", false, fmt.Errorf("fallback scan: %w", err)
	}
	// Inputs written by the run share the sheet and may fall inside the
	// plausible loan band; they are never the result.
	for _, c := range locator.LargestValues(grid, r.cfg.FallbackArea, r.cfg.FallbackMin, r.cfg.FallbackMax, 0) {
		if layout.writes(c.Cell) {
			continue
		}
		v := c.Value
		return &v, c.Cell, true, nil
	}
	log.Warn("no result found")
	return nil, "", false, nil
}
