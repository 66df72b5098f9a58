// Package locator finds probable input and output cells in a sheet by
// keyword, and the large numeric values that may hold a computed loan.
package locator

import (
	"sort"
	"strings"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/parser"
	"github.com/xuri/excelize/v2"
)

// DefaultInputKeywords are label fragments that mark borrower inputs.
var DefaultInputKeywords = []string{
	"income", "salary", "wage", "hecs", "help", "dependents", "rent", "expenses", "rate",
}

// DefaultOutputKeywords are label fragments that mark calculated outputs.
var DefaultOutputKeywords = []string{
	"borrowing", "capacity", "power", "maximum", "loan", "amount", "result",
}

// Options bounds a locator pass.
type Options struct {
	// LabelArea is scanned for keyword labels.
	LabelArea models.Area
	// NumericArea is scanned for large numbers.
	NumericArea models.Area
	// Threshold is the exclusive lower bound for a numeric candidate.
	Threshold float64
	// Limit caps the number of numeric candidates returned.
	Limit          int
	InputKeywords  []string
	OutputKeywords []string
}

// DefaultOptions scans A1:Y99 for labels and A1:Y49 for values above
// 100000, keeping the ten largest.
func DefaultOptions() Options {
	return Options{
		LabelArea:      parser.MustParseRange("A1:Y99"),
		NumericArea:    parser.MustParseRange("A1:Y49"),
		Threshold:      100000,
		Limit:          10,
		InputKeywords:  DefaultInputKeywords,
		OutputKeywords: DefaultOutputKeywords,
	}
}

// GridArea returns the area a grid must cover for a pass with o: both scan
// areas plus the column to the right of and the row below every label.
func (o Options) GridArea() models.Area {
	return models.Area{
		R1: 1,
		C1: 1,
		R2: max(o.LabelArea.R2+1, o.NumericArea.R2),
		C2: max(o.LabelArea.C2+1, o.NumericArea.C2),
	}
}

// FindLabels scans area in row-major order and maps each keyword to the
// first cell whose lower-cased text contains it. A cell is attributed to
// the first keyword, in list order, that it contains.
func FindLabels(g models.Grid, area models.Area, keywords []string) map[string]models.LabelMatch {
	found := make(map[string]models.LabelMatch)
	for row := area.R1; row <= area.R2; row++ {
		for col := area.C1; col <= area.C2; col++ {
			text, ok := g.At(row, col).(string)
			if !ok || text == "" {
				continue
			}
			lower := strings.ToLower(text)
			for _, kw := range keywords {
				if !strings.Contains(lower, strings.ToLower(kw)) {
					continue
				}
				if _, seen := found[kw]; !seen {
					cellName, _ := excelize.CoordinatesToCellName(col, row)
					found[kw] = models.LabelMatch{
						Cell:          cellName,
						Label:         text,
						AdjacentValue: g.At(row, col+1),
						BelowValue:    g.At(row+1, col),
					}
				}
				break
			}
		}
	}
	return found
}

// LargestValues collects numeric cells in area strictly above lower (and
// strictly below upper when upper > 0) and returns up to limit of them,
// largest first. Ties keep row-major order.
func LargestValues(g models.Grid, area models.Area, lower, upper float64, limit int) []models.NumericCell {
	var cells []models.NumericCell
	for row := area.R1; row <= area.R2; row++ {
		for col := area.C1; col <= area.C2; col++ {
			v, ok := g.Number(row, col)
			if !ok || v <= lower || (upper > 0 && v >= upper) {
				continue
			}
			cellName, _ := excelize.CoordinatesToCellName(col, row)
			cells = append(cells, models.NumericCell{
				Cell:      cellName,
				Value:     v,
				Formatted: parser.FormatCurrency(v),
			})
		}
	}

	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].Value > cells[j].Value
	})
	if limit > 0 && len(cells) > limit {
		cells = cells[:limit]
	}
	return cells
}

// Locate runs a full pass over g.
func Locate(g models.Grid, opts Options) (inputs, outputs map[string]models.LabelMatch, results []models.NumericCell) {
	inputs = FindLabels(g, opts.LabelArea, opts.InputKeywords)
	outputs = FindLabels(g, opts.LabelArea, opts.OutputKeywords)
	results = LargestValues(g, opts.NumericArea, opts.Threshold, 0, opts.Limit)
	return inputs, outputs, results
}
