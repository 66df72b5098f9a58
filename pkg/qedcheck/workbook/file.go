package workbook

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// FileOpener opens workbooks that recalculate by persisting a temporary
// copy next to the source and reloading it. The copy is left on disk.
type FileOpener struct {
	Logger *zap.Logger
}

// Open implements Opener.
func (o FileOpener) Open(ctx context.Context, path string) (Workbook, error) {
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
	return &FileBook{
		book: book{f: f, logger: loggerOrNop(o.Logger)},
		path: path,
	}, nil
}

// FileBook is a workbook recalculated through a save and reload cycle.
type FileBook struct {
	book
	path string
}

// Recalculate saves the workbook to TempPath and reopens the copy. Formula
// cells read after this are evaluated, since the engine does not refresh
// cached results on save.
func (b *FileBook) Recalculate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tempPath := TempPath(b.path)
	if err := b.f.SaveAs(tempPath); err != nil {
		return fmt.Errorf("save recalculation copy: %w", err)
	}
	if err := b.close(); err != nil {
		return fmt.Errorf("close before reload: %w", err)
	}
	f, err := excelize.OpenFile(tempPath)
	if err != nil {
		return fmt.Errorf("reload recalculation copy: %w", err)
	}
	b.f = f
	b.evaluate = true
	b.logger.Debug("workbook reloaded", zap.String("path", tempPath))
	return nil
}

// Close implements Workbook.
func (b *FileBook) Close() error {
	return b.close()
}
