// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-page-lock/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	clipboardWriteAll = clipboard.WriteAll
	writeClipboard    = clipboardWriteAll
)

// chromeHeight is the number of lines around the document viewport.
const chromeHeight = 8

// unlockModel is the Bubble Tea model of the viewer. While locked it shows
// a password form with a status line; once unlocked the whole screen is
// replaced by a scrollable view of the document.
type unlockModel struct {
	ctx    context.Context
	flow   service.Unlocker
	bridge *Bridge
	source string

	input      textinput.Model
	viewport   viewport.Model
	state      service.State
	submitting bool
	status     string
	note       string

	unlocked   bool
	doc        []byte
	quitByUser bool

	width  int
	height int
}

func newUnlockModel(ctx context.Context, flow service.Unlocker, bridge *Bridge, source string) *unlockModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 1024
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &unlockModel{
		ctx:      ctx,
		flow:     flow,
		bridge:   bridge,
		source:   source,
		input:    input,
		viewport: viewport.New(80, 20),
		state:    flow.State(),
	}
}

// Init implements [tea.Model]. It starts listening to the bridge and fires
// the automatic attempt.
func (m *unlockModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.bridge.listen(),
		m.cmdAttempt("load", m.flow.AttemptOnLoad),
	)
}

// Update implements [tea.Model].
func (m *unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, m.bridge.listen()

	case clearPasswordMsg:
		m.input.SetValue("")
		return m, m.bridge.listen()

	case renderMsg:
		m.unlocked = true
		m.doc = msg.doc
		m.status = ""
		m.input.Blur()
		m.viewport.SetContent(string(msg.doc))
		m.viewport.GotoTop()
		return m, m.bridge.listen()

	case bridgeClosedMsg:
		return m, nil

	case attemptDoneMsg:
		m.state = msg.state
		if msg.kind == "submit" {
			m.submitting = false
		}
		return m, nil

	case copiedMsg:
		m.note = "Copied to clipboard"
		return m, nil

	case copyFailedMsg:
		m.note = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.unlocked {
			return m.updateUnlocked(msg)
		}
		return m.updateLocked(msg)
	}

	if m.unlocked {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *unlockModel) updateLocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quitLocked):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.submit):
		if m.submitting || m.state == service.Unsupported {
			return m, nil
		}
		m.bridge.SetPassword(m.input.Value())
		m.submitting = true
		m.status = ""
		return m, m.cmdAttempt("submit", m.flow.AttemptOnSubmit)
	}

	if m.state == service.Unsupported {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *unlockModel) updateUnlocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(string(m.doc))
	case key.Matches(msg, keys.top):
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, keys.bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *unlockModel) View() string {
	if m.unlocked {
		return m.viewUnlocked()
	}
	return m.viewLocked()
}

func (m *unlockModel) viewLocked() string {
	var b strings.Builder

	switch m.state {
	case service.Unsupported:
		b.WriteString(errorStyle.Render(m.status))
		return renderPage(m.title("LOCKED"), b.String(), "esc: quit", m.width)
	case service.AutoAttempt:
		b.WriteString("Trying saved key...\n\n")
	default:
		b.WriteString("This page is password protected.\n\n")
	}

	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nUnlocking...")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
	}

	return renderPage(m.title("LOCKED"), b.String(), "enter: unlock │ esc: quit", m.width)
}

func (m *unlockModel) viewUnlocked() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.note))
	}

	help := fmt.Sprintf("↑/↓ scroll │ g/G top/bottom │ c: copy │ q: quit │ %3.f%%", m.viewport.ScrollPercent()*100)
	return renderPage(m.title("UNLOCKED"), b.String(), help, m.width)
}

func (m *unlockModel) title(label string) string {
	width := m.width - 20
	if width <= 0 {
		width = 60
	}
	return label + "  " + fitText(m.source, width)
}

func (m *unlockModel) cmdAttempt(kind string, attempt func(context.Context) service.State) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return attemptDoneMsg{kind: kind, state: attempt(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
