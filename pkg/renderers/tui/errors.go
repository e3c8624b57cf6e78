package tui

import "errors"

// ErrCancelled signals the user left the session without saving.
var ErrCancelled = errors.New("tui: cancelled")
