package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/fields"
	"github.com/goliatone/go-paramedit/pkg/model"
)

// Control is the on-screen widget backing one field. It owns cursor and
// focus state only; the editor remains the source of truth for the value.
type Control interface {
	// Update applies msg and calls onEdit synchronously when the value
	// changed as a result.
	Update(msg tea.Msg, onEdit func(string)) tea.Cmd
	SetValue(value string)
	Focus() tea.Cmd
	Blur()
	View() string
}

// FieldRenderer builds a Control for a field.
type FieldRenderer interface {
	NewControl(field editor.Field) Control
}

// FieldRendererFunc adapts a function to FieldRenderer.
type FieldRendererFunc func(field editor.Field) Control

// NewControl implements FieldRenderer.
func (fn FieldRendererFunc) NewControl(field editor.Field) Control {
	return fn(field)
}

// DefaultRegistry returns a registry with the built-in string renderer.
func DefaultRegistry() *fields.Registry[FieldRenderer] {
	reg := fields.NewRegistry[FieldRenderer]()
	reg.MustRegister(model.ParamTypeString, FieldRendererFunc(NewTextControl))
	return reg
}

// TextControl is a single-line free-text input.
type TextControl struct {
	input textinput.Model
}

// NewTextControl builds a TextControl seeded with the field value.
func NewTextControl(field editor.Field) Control {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = field.Param.Name
	input.CharLimit = 0
	input.SetValue(field.Value)
	input.CursorEnd()
	return &TextControl{input: input}
}

func (c *TextControl) Update(msg tea.Msg, onEdit func(string)) tea.Cmd {
	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if after := c.input.Value(); after != before && onEdit != nil {
		onEdit(after)
	}
	return cmd
}

func (c *TextControl) SetValue(value string) {
	if c.input.Value() == value {
		return
	}
	c.input.SetValue(value)
	c.input.CursorEnd()
}

func (c *TextControl) Focus() tea.Cmd {
	return c.input.Focus()
}

func (c *TextControl) Blur() {
	c.input.Blur()
}

func (c *TextControl) View() string {
	return c.input.View()
}

// Value returns the text currently shown in the input.
func (c *TextControl) Value() string {
	return c.input.Value()
}
