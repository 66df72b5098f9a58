package models

// LabelMatch describes the first cell whose text contains a keyword.
type LabelMatch struct {
	// Cell is the A1-style reference of the label cell.
	Cell string `json:"cell"`
	// Label is the label text as found.
	Label string `json:"label"`
	// AdjacentValue is the value to the right of the label.
	AdjacentValue interface{} `json:"adjacent_value"`
	// BelowValue is the value directly below the label.
	BelowValue interface{} `json:"below_value,omitempty"`
}

// NumericCell is a numeric cell that may hold a computed loan amount.
type NumericCell struct {
	Cell      string  `json:"cell"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// Analysis is the output of a cell locator pass over one sheet.
type Analysis struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Worksheets lists every sheet in workbook order.
	Worksheets []string `json:"worksheets"`
	// Sheet is the analysed sheet.
	Sheet string `json:"sheet"`
	// InputCells maps input keywords to their first matching label.
	InputCells map[string]LabelMatch `json:"input_cells"`
	// OutputCells maps output keywords to their first matching label.
	OutputCells map[string]LabelMatch `json:"output_cells"`
	// PotentialResults holds the largest numeric values, descending.
	PotentialResults []NumericCell `json:"potential_results"`
}
