// Package workbook provides the spreadsheet collaborator the scenario runner
// drives: open a workbook, write cells, recalculate and read results back.
package workbook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates the workbook file does not exist.
var ErrNotFound = errors.New("workbook not found")

// ErrSheetNotFound indicates a sheet name the workbook does not contain.
var ErrSheetNotFound = errors.New("sheet not found")

// Workbook is an open spreadsheet document.
type Workbook interface {
	// GetCell returns the raw text of a cell. Formula cells yield their
	// computed value once the workbook has been recalculated.
	GetCell(sheet, cell string) (string, error)
	// SetCell writes a value into a cell.
	SetCell(sheet, cell string, value interface{}) error
	// Recalculate brings formula results up to date with the written cells.
	Recalculate(ctx context.Context) error
	// Close releases the workbook without writing back to the source file.
	Close() error
}

// Opener opens workbooks by path.
type Opener interface {
	Open(ctx context.Context, path string) (Workbook, error)
}

// TempPath returns the path of the recalculation copy for path, e.g.
// calc.xlsm -> calc.temp.xlsm.
func TempPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".temp" + ext
}

// checkExists maps a missing file to ErrNotFound.
func checkExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	return nil
}
