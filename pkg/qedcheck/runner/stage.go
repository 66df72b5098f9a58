package runner

// Stage is how far a scenario run has progressed.
type Stage int

const (
	StagePending Stage = iota
	StageOpened
	StageDefaultsWritten
	StageInputsWritten
	StageRecalculated
	StageResultRead
	StageClosed
)

var stageNames = [...]string{
	StagePending:         "pending",
	StageOpened:          "opened",
	StageDefaultsWritten: "defaults-written",
	StageInputsWritten:   "inputs-written",
	StageRecalculated:    "recalculated",
	StageResultRead:      "result-read",
	StageClosed:          "closed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}
