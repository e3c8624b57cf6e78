package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/fields"
	"github.com/goliatone/go-paramedit/pkg/model"
)

// InputsMsg delivers new external definitions and model to a running
// program. It is the only path that triggers reconciliation.
type InputsMsg struct {
	Params []model.Param
	Model  model.Model
}

// Model is the bubbletea model driving an editor session.
type Model struct {
	editor   *editor.Editor
	registry *fields.Registry[FieldRenderer]
	controls map[int]Control
	focus    int

	title   string
	styles  Styles
	keys    KeyMap
	showIDs bool
	logger  *zap.Logger

	saved     bool
	cancelled bool
	err       error
}

var _ tea.Model = (*Model)(nil)

// New builds a model around ed.
func New(ed *editor.Editor, options ...Option) *Model {
	m := &Model{
		editor:   ed,
		registry: DefaultRegistry(),
		controls: make(map[int]Control),
		focus:    -1,
		styles:   DefaultStyles(),
		keys:     DefaultKeyMap(),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	m.syncControls()
	return m
}

// Init focuses the first editable field.
func (m *Model) Init() tea.Cmd {
	return m.moveFocus(1)
}

// Update handles key events and external input changes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case InputsMsg:
		focusedID, hadFocus := m.focusedParamID()
		if err := m.editor.SetInputs(msg.Params, msg.Model); err != nil {
			m.err = err
			m.logger.Warn("rejected input change", zap.Error(err))
			return m, nil
		}
		m.err = nil
		m.syncControls()
		return m, m.refocus(focusedID, hadFocus)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			m.saved = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(-1)
		}
	}

	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	fieldsView := m.editor.Fields()
	if m.focus < 0 || m.focus >= len(fieldsView) {
		return nil
	}
	id := fieldsView[m.focus].Param.ID
	control, ok := m.controls[id]
	if !ok {
		return nil
	}
	return control.Update(msg, func(next string) {
		if err := m.editor.Edit(id, next); err != nil {
			m.err = err
		}
	})
}

// View renders every field followed by the key help.
func (m *Model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n")
	}

	for idx, field := range m.editor.Fields() {
		control, ok := m.controls[field.Param.ID]
		if !ok {
			b.WriteString(m.styles.Fallback.Render(fields.UnsupportedMessage(field.Param)))
			b.WriteString("\n")
			continue
		}

		labelStyle := m.styles.Label
		if idx == m.focus {
			labelStyle = m.styles.FocusedLabel
		}
		b.WriteString(labelStyle.Render(field.Param.Name))
		if m.showIDs {
			b.WriteString(" ")
			b.WriteString(m.styles.FieldID.Render("[" + field.ID + "]"))
		}
		b.WriteString("\n")
		b.WriteString(control.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.keys.helpLine()))
	return b.String()
}

// Handle returns the accessor for the edited model.
func (m *Model) Handle() editor.Handle {
	return m.editor.Handle()
}

// Saved reports whether the session ended with a save.
func (m *Model) Saved() bool {
	return m.saved
}

// Cancelled reports whether the session was abandoned.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Err returns the last error surfaced in the view.
func (m *Model) Err() error {
	return m.err
}

// FocusedFieldID returns the identifier of the focused field, or "" when no
// field is editable.
func (m *Model) FocusedFieldID() string {
	fieldsView := m.editor.Fields()
	if m.focus < 0 || m.focus >= len(fieldsView) {
		return ""
	}
	return fieldsView[m.focus].ID
}

// syncControls creates controls for new supported fields, drops controls for
// removed ones, and pushes reconciled values into the rest.
func (m *Model) syncControls() {
	current := make(map[int]struct{})
	for _, field := range m.editor.Fields() {
		current[field.Param.ID] = struct{}{}
		renderer, ok := m.registry.Resolve(field.Param.Type)
		if !ok {
			delete(m.controls, field.Param.ID)
			m.logger.Debug("no renderer for param type",
				zap.Int("param_id", field.Param.ID),
				zap.String("type", string(field.Param.Type)),
			)
			continue
		}
		if control, exists := m.controls[field.Param.ID]; exists {
			control.SetValue(field.Value)
			continue
		}
		m.controls[field.Param.ID] = renderer.NewControl(field)
	}
	for id := range m.controls {
		if _, ok := current[id]; !ok {
			delete(m.controls, id)
		}
	}
}

// moveFocus advances focus by step, skipping fields without a control.
func (m *Model) moveFocus(step int) tea.Cmd {
	fieldsView := m.editor.Fields()
	n := len(fieldsView)
	if n == 0 {
		m.focus = -1
		return nil
	}

	start := m.focus
	if start < 0 {
		start = -1
		if step < 0 {
			start = 0
		}
	}
	for i := 1; i <= n; i++ {
		idx := ((start+step*i)%n + n) % n
		if _, ok := m.controls[fieldsView[idx].Param.ID]; ok {
			return m.setFocus(idx)
		}
	}
	m.blurAll()
	m.focus = -1
	return nil
}

// focusedParamID returns the parameter id of the focused row.
func (m *Model) focusedParamID() (int, bool) {
	fieldsView := m.editor.Fields()
	if m.focus < 0 || m.focus >= len(fieldsView) {
		return 0, false
	}
	return fieldsView[m.focus].Param.ID, true
}

// refocus moves focus to the row now holding paramID, falling back to the
// first editable field when that parameter is gone or has no control.
func (m *Model) refocus(paramID int, hadFocus bool) tea.Cmd {
	if hadFocus {
		if _, ok := m.controls[paramID]; ok {
			for idx, field := range m.editor.Fields() {
				if field.Param.ID == paramID {
					return m.setFocus(idx)
				}
			}
		}
	}
	m.focus = -1
	return m.moveFocus(1)
}

func (m *Model) setFocus(idx int) tea.Cmd {
	m.blurAll()
	m.focus = idx
	field := m.editor.Fields()[idx]
	return m.controls[field.Param.ID].Focus()
}

func (m *Model) blurAll() {
	for _, control := range m.controls {
		control.Blur()
	}
}
