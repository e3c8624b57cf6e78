package prompt

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/fields"
	"github.com/goliatone/go-paramedit/pkg/model"
)

// FieldRenderer asks for one field value and reports it through onEdit.
type FieldRenderer interface {
	Prompt(ctx context.Context, driver PromptDriver, field editor.Field, onEdit func(string)) error
}

// FieldRendererFunc adapts a function to FieldRenderer.
type FieldRendererFunc func(ctx context.Context, driver PromptDriver, field editor.Field, onEdit func(string)) error

// Prompt implements FieldRenderer.
func (fn FieldRendererFunc) Prompt(ctx context.Context, driver PromptDriver, field editor.Field, onEdit func(string)) error {
	return fn(ctx, driver, field, onEdit)
}

// DefaultRegistry returns a registry with the built-in string prompt.
func DefaultRegistry() *fields.Registry[FieldRenderer] {
	reg := fields.NewRegistry[FieldRenderer]()
	reg.MustRegister(model.ParamTypeString, FieldRendererFunc(promptString))
	return reg
}

func promptString(ctx context.Context, driver PromptDriver, field editor.Field, onEdit func(string)) error {
	value, err := driver.Input(ctx, InputConfig{
		Message: field.Param.Name,
		Default: field.Value,
		Help:    field.ID,
	})
	if err != nil {
		return err
	}
	if value != field.Value {
		onEdit(value)
	}
	return nil
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithRegistry overrides the field renderer registry.
func WithRegistry(reg *fields.Registry[FieldRenderer]) Option {
	return func(s *Session) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithLogger injects a logger. Nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session walks an editor's fields in definition order.
type Session struct {
	driver   PromptDriver
	registry *fields.Registry[FieldRenderer]
	logger   *zap.Logger
}

// New constructs a session with defaults (survey driver, string prompt).
func New(options ...Option) *Session {
	s := &Session{
		driver:   NewSurveyDriver(nil),
		registry: DefaultRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Run prompts for every field and returns the resulting model. Edits made
// before an error are kept in ed.
func (s *Session) Run(ctx context.Context, ed *editor.Editor) (model.Model, error) {
	if ctx == nil {
		return model.Model{}, errors.New("prompt: context is required")
	}
	if ed == nil {
		return model.Model{}, errors.New("prompt: editor is required")
	}

	for _, field := range ed.Fields() {
		if err := ctx.Err(); err != nil {
			return model.Model{}, err
		}

		renderer, ok := s.registry.Resolve(field.Param.Type)
		if !ok {
			s.logger.Debug("no renderer for param type",
				zap.Int("param_id", field.Param.ID),
				zap.String("type", string(field.Param.Type)),
			)
			if err := s.driver.Info(ctx, fields.UnsupportedMessage(field.Param)); err != nil {
				return model.Model{}, fmt.Errorf("prompt: info: %w", err)
			}
			continue
		}

		var editErr error
		err := renderer.Prompt(ctx, s.driver, field, func(next string) {
			editErr = ed.Edit(field.Param.ID, next)
		})
		if err != nil {
			return model.Model{}, fmt.Errorf("prompt: field %s: %w", field.ID, err)
		}
		if editErr != nil {
			return model.Model{}, fmt.Errorf("prompt: field %s: %w", field.ID, editErr)
		}
	}

	return ed.CurrentModel(), nil
}
