package qedcheck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/locator"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/parser"
	"github.com/xuri/excelize/v2"
)

// Analyze scans one sheet of the workbook at path for input and output
// labels and large numeric values. The workbook is only read.
func Analyze(path string, opts AnalyzeOptions) (*models.Analysis, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, &AnalysisError{SheetName: sheetName, Err: errors.New("sheet not found")}
	}

	grid, err := parser.LoadGrid(f, sheetName, opts.Locator.GridArea())
	if err != nil {
		return nil, &AnalysisError{SheetName: sheetName, Err: err}
	}

	inputs, outputs, results := locator.Locate(grid, opts.Locator)
	return &models.Analysis{
		BookName:         filepath.Base(path),
		Worksheets:       f.GetSheetList(),
		Sheet:            sheetName,
		InputCells:       inputs,
		OutputCells:      outputs,
		PotentialResults: results,
	}, nil
}
