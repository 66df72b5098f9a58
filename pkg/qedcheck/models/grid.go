// Package models defines data structures shared by the locator, runner and
// output packages.
package models

// Grid is a rectangular snapshot of cell values.
//
// Values are int64, float64, string or nil for an empty cell.
type Grid struct {
	// Area is the sheet area the snapshot covers.
	Area Area
	// Rows holds values in row-major order; Rows[i][j] is the cell at
	// (Area.R1+i, Area.C1+j).
	Rows [][]interface{}
}

// At returns the value of the 1-based cell (row, col), or nil when the cell
// is empty or outside the grid.
func (g Grid) At(row, col int) interface{} {
	if !g.Area.Contains(row, col) {
		return nil
	}
	i, j := row-g.Area.R1, col-g.Area.C1
	if i >= len(g.Rows) || j >= len(g.Rows[i]) {
		return nil
	}
	return g.Rows[i][j]
}

// Number returns the cell value as float64 when it holds a number.
func (g Grid) Number(row, col int) (float64, bool) {
	switch v := g.At(row, col).(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
