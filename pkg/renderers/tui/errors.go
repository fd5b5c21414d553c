package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrCanceled is returned when the user declines to submit.
	ErrCanceled = errors.New("tui: submission canceled")
	// ErrControllerRequired is returned by Run without a form controller.
	ErrControllerRequired = errors.New("tui: form controller is required")
)
