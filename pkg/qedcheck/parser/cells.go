// Package parser reads cell values and references out of workbooks.
package parser

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/xuri/excelize/v2"
)

// CellReader reads the raw text of one cell.
type CellReader interface {
	GetCell(sheet, cell string) (string, error)
}

// LoadGrid reads area of sheetName from an open workbook in one pass.
// Values are the cached cell values; formulas are not evaluated.
func LoadGrid(f *excelize.File, sheetName string, area models.Area) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Grid{}, err
	}

	grid := newGrid(area)
	for i := range grid.Rows {
		rowIdx := area.R1 - 1 + i
		if rowIdx >= len(rows) {
			break
		}
		row := rows[rowIdx]
		for j := range grid.Rows[i] {
			colIdx := area.C1 - 1 + j
			if colIdx >= len(row) {
				break
			}
			grid.Rows[i][j] = parseValue(row[colIdx])
		}
	}
	return grid, nil
}

// ReadGrid reads area of sheet cell by cell through r.
func ReadGrid(r CellReader, sheet string, area models.Area) (models.Grid, error) {
	grid := newGrid(area)
	for i := range grid.Rows {
		for j := range grid.Rows[i] {
			cellName, err := excelize.CoordinatesToCellName(area.C1+j, area.R1+i)
			if err != nil {
				return models.Grid{}, err
			}
			raw, err := r.GetCell(sheet, cellName)
			if err != nil {
				return models.Grid{}, fmt.Errorf("read %s!%s: %w", sheet, cellName, err)
			}
			grid.Rows[i][j] = parseValue(raw)
		}
	}
	return grid, nil
}

func newGrid(area models.Area) models.Grid {
	rows := make([][]interface{}, area.Rows())
	for i := range rows {
		rows[i] = make([]interface{}, area.Cols())
	}
	return models.Grid{Area: area, Rows: rows}
}

// parseValue attempts to parse a string value as a number.
// Returns nil for an empty cell, int64 for integers, float64 for decimals,
// or the original string.
func parseValue(s string) interface{} {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
