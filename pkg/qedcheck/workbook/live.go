package workbook

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DefaultSettleDelay is the pause after a live recalculation request.
const DefaultSettleDelay = time.Second

// LiveOpener opens workbooks that are recalculated in memory and never
// saved.
type LiveOpener struct {
	// SettleDelay is waited after each recalculation request before results
	// are read.
	SettleDelay time.Duration
	Logger      *zap.Logger
}

// Open implements Opener.
func (o LiveOpener) Open(ctx context.Context, path string) (Workbook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkExists(path); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &LiveBook{
		book:   book{f: f, logger: loggerOrNop(o.Logger), evaluate: true},
		settle: o.SettleDelay,
	}, nil
}

// LiveBook is a workbook held in memory whose formulas are evaluated on
// read.
type LiveBook struct {
	book
	settle time.Duration
}

// Recalculate waits the settle delay. It returns early with the context
// error when ctx is done first.
func (b *LiveBook) Recalculate(ctx context.Context) error {
	if b.settle <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.settle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Close discards all changes.
func (b *LiveBook) Close() error {
	return b.close()
}
