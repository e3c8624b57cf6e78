package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/model"
)

// Run starts an interactive session for ed and returns the edited model once
// the user saves. Cancelling returns ErrCancelled. programOptions are passed
// to tea.NewProgram (for example tea.WithInput in tests).
func Run(ctx context.Context, ed *editor.Editor, options []Option, programOptions ...tea.ProgramOption) (model.Model, error) {
	if ed == nil {
		return model.Model{}, fmt.Errorf("tui: editor is required")
	}

	m := New(ed, options...)
	programOptions = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOptions...)
	final, err := tea.NewProgram(m, programOptions...).Run()
	if err != nil {
		return model.Model{}, fmt.Errorf("tui: run program: %w", err)
	}

	result, ok := final.(*Model)
	if !ok {
		return model.Model{}, fmt.Errorf("tui: unexpected final model %T", final)
	}
	if !result.Saved() {
		return model.Model{}, ErrCancelled
	}
	return result.Handle().CurrentModel(), nil
}
