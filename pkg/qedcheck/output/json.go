// Package output serialises results and analyses and renders the console
// summary.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
)

// ToJSON marshals v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ResultsToJSON marshals results as a JSON list. A nil slice is written as
// an empty list.
func ResultsToJSON(results []models.Result, pretty bool) ([]byte, error) {
	if results == nil {
		results = []models.Result{}
	}
	return ToJSON(results, pretty)
}

// AnalysisToJSON marshals a locator analysis.
func AnalysisToJSON(a *models.Analysis, pretty bool) ([]byte, error) {
	return ToJSON(a, pretty)
}

// WriteFile writes data to path, creating the parent directory.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
