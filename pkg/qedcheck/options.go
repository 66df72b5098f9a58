// Package qedcheck checks a serviceability workbook against borrowing power
// scenarios and locates the cells such checks depend on.
package qedcheck

import (
	"time"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/locator"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/runner"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/workbook"
)

// Variant selects how the workbook is recalculated.
type Variant string

const (
	// VariantFile saves a temporary copy of the workbook and reloads it.
	VariantFile Variant = "file"
	// VariantLive recalculates in memory and waits a settle delay before
	// reading results.
	VariantLive Variant = "live"
)

// DefaultTolerance returns the match tolerance in percent for the variant.
func (v Variant) DefaultTolerance() float64 {
	if v == VariantLive {
		return 10
	}
	return 5
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantFile || v == VariantLive
}

// Options configures a check run.
type Options struct {
	Variant Variant
	// Tolerance is the match tolerance in percent. Zero selects the
	// variant's default.
	Tolerance float64
	// SettleDelay is the pause after a live recalculation.
	SettleDelay time.Duration
	Runner      runner.Config
}

// DefaultOptions returns options for the file variant against path.
func DefaultOptions(path string) Options {
	return Options{
		Variant:     VariantFile,
		SettleDelay: workbook.DefaultSettleDelay,
		Runner:      runner.DefaultConfig(path),
	}
}

// EffectiveTolerance returns the tolerance the run classifies with.
func (o Options) EffectiveTolerance() float64 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return o.Variant.DefaultTolerance()
}

// AnalyzeOptions configures a locator pass.
type AnalyzeOptions struct {
	// Sheet is the sheet to analyse; empty means the active sheet.
	Sheet   string
	Locator locator.Options
}

// DefaultAnalyzeOptions returns options for analysing the active sheet.
func DefaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{Locator: locator.DefaultOptions()}
}
