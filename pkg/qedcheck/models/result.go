package models

import "math"

// Region identifies one of the two calculation layouts of the workbook.
type Region string

const (
	RegionSingle Region = "single"
	RegionDual   Region = "dual"
)

// RegionFor returns the region a scenario must be run against.
func RegionFor(s Scenario) Region {
	if s.IsDual() {
		return RegionDual
	}
	return RegionSingle
}

// Status is the categorical outcome of comparing two results.
type Status string

const (
	StatusMatch    Status = "MATCH"
	StatusVariance Status = "VARIANCE"
	StatusNoResult Status = "NO RESULT"
)

// Variance returns the signed percentage difference of ours against
// reference.
func Variance(ours, reference float64) float64 {
	return (ours - reference) / reference * 100
}

// Classify labels a variance against a tolerance in percent. A variance of
// exactly the tolerance is a match.
func Classify(variance, tolerance float64) Status {
	if math.Abs(variance) <= tolerance {
		return StatusMatch
	}
	return StatusVariance
}

// Result is the outcome of running one scenario through the workbook.
type Result struct {
	ScenarioName string `json:"scenario_name"`
	// WorkbookResult is the maximum loan read back from the workbook, nil
	// when no usable value was found.
	WorkbookResult *float64 `json:"qed_result"`
	AppResult      float64  `json:"our_app_result"`
	ExpectedMin    float64  `json:"expected_min"`
	ExpectedMax    float64  `json:"expected_max"`
	WorksheetUsed  string   `json:"worksheet_used"`
	// ResultCell is where WorkbookResult was read from.
	ResultCell string `json:"result_cell,omitempty"`
	// Fallback is set when the value came from the numeric scan rather than
	// the designated result cell.
	Fallback bool `json:"fallback,omitempty"`
}

// Variance returns the variance of the application result against the
// workbook result. ok is false when there is no positive workbook result.
func (r Result) Variance() (v float64, ok bool) {
	if r.WorkbookResult == nil || *r.WorkbookResult <= 0 {
		return 0, false
	}
	return Variance(r.AppResult, *r.WorkbookResult), true
}

// Status classifies the result against tolerance.
func (r Result) Status(tolerance float64) Status {
	v, ok := r.Variance()
	if !ok {
		return StatusNoResult
	}
	return Classify(v, tolerance)
}

// InExpectedRange reports whether the workbook result lies in the
// scenario's expected range.
func (r Result) InExpectedRange() bool {
	if r.WorkbookResult == nil {
		return false
	}
	return *r.WorkbookResult >= r.ExpectedMin && *r.WorkbookResult <= r.ExpectedMax
}
