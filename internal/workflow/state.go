package workflow

// State is a step of the commit workflow.
type State int

const (
	StateStart State = iota
	StateChecklistEvaluated
	StateAborted
	StateMessageBuilt
	StateStaged
	StateRebased
	StateCommitted
	StatePushed
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateStart:              "Start",
	StateChecklistEvaluated: "ChecklistEvaluated",
	StateAborted:            "Aborted",
	StateMessageBuilt:       "MessageBuilt",
	StateStaged:             "Staged",
	StateRebased:            "Rebased",
	StateCommitted:          "Committed",
	StatePushed:             "Pushed",
	StateDone:               "Done",
	StateFailed:             "Failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition can happen from s.
func (s State) Terminal() bool {
	return s == StateAborted || s == StateDone || s == StateFailed
}
