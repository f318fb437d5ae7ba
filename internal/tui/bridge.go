// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// eventBuffer is large enough for every event one attempt can emit plus the
// construction-time advisory.
const eventBuffer = 16

// Bridge connects the unlock flow, which runs on worker goroutines, to the
// Bubble Tea event loop. It implements service.Form and service.Presenter
// by forwarding every call as a message the model picks up through listen.
type Bridge struct {
	mu       sync.Mutex
	password string

	events chan tea.Msg
	done   chan struct{}
	once   sync.Once
}

// NewBridge returns an open Bridge.
func NewBridge() *Bridge {
	return &Bridge{
		events: make(chan tea.Msg, eventBuffer),
		done:   make(chan struct{}),
	}
}

// SetPassword records the text of the password input. It is called by the
// UI right before a submit attempt is dispatched.
func (b *Bridge) SetPassword(password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.password = password
}

func (b *Bridge) Password() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.password
}

func (b *Bridge) ClearPassword() {
	b.mu.Lock()
	b.password = ""
	b.mu.Unlock()

	b.send(clearPasswordMsg{})
}

func (b *Bridge) ShowMessage(msg string) {
	b.send(statusMsg{text: msg})
}

func (b *Bridge) Render(plaintext []byte) {
	b.send(renderMsg{doc: bytes.Clone(plaintext)})
}

// Close stops forwarding. Pending and later events are dropped.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}

// send blocks until the event is buffered or the bridge is closed.
func (b *Bridge) send(msg tea.Msg) {
	select {
	case b.events <- msg:
	case <-b.done:
	}
}

// listen waits for the next event. The model re-arms it after every event.
func (b *Bridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.events:
			return msg
		case <-b.done:
			return bridgeClosedMsg{}
		}
	}
}
