package editor

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/pkg/model"
)

// DefaultFieldIDPrefix is used for per-field identifiers when no prefix is
// configured.
const DefaultFieldIDPrefix = "param"

// ChangeFunc receives the canonical model after every edit or reconciliation.
type ChangeFunc func(model.Model)

// Option configures an Editor.
type Option func(*Editor)

// WithOnChange registers an advisory change callback. It runs synchronously
// before Edit or SetInputs return.
func WithOnChange(fn ChangeFunc) Option {
	return func(e *Editor) {
		e.onChange = fn
	}
}

// WithFieldIDPrefix overrides the prefix used by FieldID.
func WithFieldIDPrefix(prefix string) Option {
	return func(e *Editor) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			e.prefix = trimmed
		}
	}
}

// WithLogger injects a logger. Nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}
