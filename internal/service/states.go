package service

// State is a stage of the unlock flow.
type State int

const (
	// Idle is the initial state before any attempt.
	Idle State = iota
	// AutoAttempt means the cached key is being tried.
	AutoAttempt
	// WaitingForInput means the page waits for a password.
	WaitingForInput
	// ManualAttempt means a submitted password is being tried.
	ManualAttempt
	// Unlocked is terminal: the document has been rendered.
	Unlocked
	// Unsupported is terminal: the platform lacks the required primitives.
	Unsupported
)

var stateNames = [...]string{
	Idle:            "idle",
	AutoAttempt:     "auto_attempt",
	WaitingForInput: "waiting_for_input",
	ManualAttempt:   "manual_attempt",
	Unlocked:        "unlocked",
	Unsupported:     "unsupported",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further attempt can change s.
func (s State) Terminal() bool {
	return s == Unlocked || s == Unsupported
}
