package qedcheck

import (
	"errors"
	"fmt"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/workbook"
)

// ErrWorkbookNotFound indicates the workbook file does not exist.
var ErrWorkbookNotFound = workbook.ErrNotFound

// ErrInvalidVariant indicates an unknown recalculation variant.
var ErrInvalidVariant = errors.New("invalid variant")

// AnalysisError represents an error while analysing one sheet.
type AnalysisError struct {
	SheetName string
	Err       error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
