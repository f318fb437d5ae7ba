package tui

import "errors"

var (
	// ErrUserQuit is returned by [TUI.Run] when the user leaves before the
	// page is unlocked.
	ErrUserQuit = errors.New("user quit")
	// ErrUnsupported is returned by [TUI.Run] when unlocking is impossible on
	// this platform.
	ErrUnsupported = errors.New("unlocking is not supported on this platform")
)
