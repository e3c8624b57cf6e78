// Package tui renders a parameter editor as an interactive bubbletea program.
//
// Each parameter becomes one row. Rows whose type resolves through the field
// registry get a Control (a single-line textinput for "string"); unknown
// types render a fallback row and keep their value in the model. Key events
// flow through Model.Update one at a time, so edits reach the editor in the
// order the terminal delivers them.
//
//	ed, _ := editor.New(params, initial)
//	result, err := tui.Run(ctx, ed)
package tui
