package editor

import "errors"

// ErrUnknownParam is returned by Edit when the id is not a current parameter.
var ErrUnknownParam = errors.New("editor: unknown param")
