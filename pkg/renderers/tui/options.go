package tui

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/pkg/fields"
)

// Option configures the TUI model.
type Option func(*Model)

// WithRegistry overrides the field renderer registry.
func WithRegistry(reg *fields.Registry[FieldRenderer]) Option {
	return func(m *Model) {
		if reg != nil {
			m.registry = reg
		}
	}
}

// WithTitle sets the heading shown above the fields.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithStyles overrides the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithShowFieldIDs prints each field identifier next to its label.
func WithShowFieldIDs(show bool) Option {
	return func(m *Model) {
		m.showIDs = show
	}
}

// WithLogger injects a logger. Nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}
