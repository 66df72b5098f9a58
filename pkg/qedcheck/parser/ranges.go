package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range like $A$1:$Z$99, A1:Z99 or a single cell F42
// into an Area. Corners may be given in either order.
func ParseRange(rangeStr string) (models.Area, error) {
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")
	if rangeStr == "" {
		return models.Area{}, fmt.Errorf("empty range")
	}

	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return models.Area{}, fmt.Errorf("invalid range %q", rangeStr)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	return models.Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// MustParseRange is like ParseRange but panics on error. It is meant for
// package-level defaults.
func MustParseRange(rangeStr string) models.Area {
	area, err := ParseRange(rangeStr)
	if err != nil {
		panic(err)
	}
	return area
}

// FormatRange renders an area in A1:B2 notation.
func FormatRange(area models.Area) string {
	start, _ := excelize.CoordinatesToCellName(area.C1, area.R1)
	end, _ := excelize.CoordinatesToCellName(area.C2, area.R2)
	return fmt.Sprintf("%s:%s", start, end)
}

// SplitReference splits 'Sheet Name'!$F$42 into its sheet and cell parts.
// A reference without a sheet returns an empty sheet name.
func SplitReference(ref string) (sheet, cell string) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}
	return sheet, strings.ReplaceAll(ref, "$", "")
}
