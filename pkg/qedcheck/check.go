package qedcheck

import (
	"context"
	"fmt"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/runner"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/workbook"
	"go.uber.org/zap"
)

// NewOpener returns the workbook opener for opts.Variant.
func NewOpener(opts Options, logger *zap.Logger) (workbook.Opener, error) {
	switch opts.Variant {
	case VariantFile, "":
		return workbook.FileOpener{Logger: logger}, nil
	case VariantLive:
		return workbook.LiveOpener{SettleDelay: opts.SettleDelay, Logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be file or live)", ErrInvalidVariant, opts.Variant)
	}
}

// Check runs every scenario against the workbook configured in opts.
func Check(ctx context.Context, opts Options, scenarios []models.Scenario, logger *zap.Logger) (*runner.Report, error) {
	opener, err := NewOpener(opts, logger)
	if err != nil {
		return nil, err
	}
	return runner.New(opener, opts.Runner, logger).RunAll(ctx, scenarios)
}
