package tui

import "github.com/MKhiriev/go-page-lock/internal/service"

// statusMsg carries text for the status line.
type statusMsg struct {
	text string
}

// clearPasswordMsg asks the model to empty the password input.
type clearPasswordMsg struct{}

// renderMsg carries the decrypted document.
type renderMsg struct {
	doc []byte
}

// attemptDoneMsg reports the state after an unlock attempt returned.
type attemptDoneMsg struct {
	kind  string
	state service.State
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

// bridgeClosedMsg is delivered once the bridge stops forwarding events.
type bridgeClosedMsg struct{}
