package tui

import (
	"context"

	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal surface of the viewer.
type TUI struct {
	bridge *Bridge
	source string
	opts   []tea.ProgramOption
	logger *logger.Logger
}

// New creates a TUI for the page loaded from source.
func New(source string, log *logger.Logger) (*TUI, error) {
	return &TUI{
		bridge: NewBridge(),
		source: source,
		opts:   []tea.ProgramOption{tea.WithAltScreen()},
		logger: log,
	}, nil
}

// Form returns the password surface the unlock flow talks to.
func (t *TUI) Form() service.Form {
	return t.bridge
}

// Presenter returns the document surface the unlock flow renders into.
func (t *TUI) Presenter() service.Presenter {
	return t.bridge
}

// Run shows the locked page, drives flow until the user quits, and returns
// the decrypted document if the page was unlocked.
func (t *TUI) Run(ctx context.Context, flow service.Unlocker) ([]byte, error) {
	defer t.bridge.Close()

	model := newUnlockModel(ctx, flow, t.bridge, t.source)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)

	finalModel, runErr := tea.NewProgram(model, opts...).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(*unlockModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}

	t.logger.Debug().Str("state", result.state.String()).Msg("viewer closed")

	switch {
	case result.unlocked:
		return result.doc, nil
	case result.state == service.Unsupported:
		return nil, ErrUnsupported
	default:
		return nil, ErrUserQuit
	}
}
