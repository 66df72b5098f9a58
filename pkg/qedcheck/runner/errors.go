package runner

import "fmt"

// ScenarioError is a failure while running one scenario.
type ScenarioError struct {
	Scenario string
	// Stage is the last stage the run reached before failing.
	Stage Stage
	Err   error
}

func (e *ScenarioError) Error() string {
	return fmt.Sprintf("scenario %q failed after %s: %v", e.Scenario, e.Stage, e.Err)
}

func (e *ScenarioError) Unwrap() error {
	return e.Err
}
