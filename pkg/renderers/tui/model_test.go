package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/model"
)

func newEditor(t *testing.T, params []model.Param, m model.Model, options ...editor.Option) *editor.Editor {
	t.Helper()
	ed, err := editor.New(params, m, options...)
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	return ed
}

func productParams() []model.Param {
	return []model.Param{
		{ID: 1, Name: "Name", Type: model.ParamTypeString},
		{ID: 2, Name: "Color", Type: model.ParamTypeString},
		{ID: 3, Name: "Size", Type: model.ParamTypeString},
	}
}

func productModel() model.Model {
	return model.Model{ParamValues: []model.ParamValue{
		{ParamID: 1, Value: "T-Shirt"},
		{ParamID: 3, Value: "M"},
	}}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, keyType tea.KeyType) {
	m.Update(tea.KeyMsg{Type: keyType})
}

func TestModel_TypingEditsFocusedField(t *testing.T) {
	m := New(newEditor(t, productParams(), productModel()))
	m.Init()

	if got := m.FocusedFieldID(); got != "param-1" {
		t.Fatalf("expected first field focused, got %q", got)
	}

	press(m, tea.KeyTab)
	typeText(m, "Red")

	press(m, tea.KeyTab)
	press(m, tea.KeyBackspace)
	typeText(m, "L")

	want := model.Model{ParamValues: []model.ParamValue{
		{ParamID: 1, Value: "T-Shirt"},
		{ParamID: 2, Value: "Red"},
		{ParamID: 3, Value: "L"},
	}}
	if diff := cmp.Diff(want, m.Handle().CurrentModel()); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_FocusWrapsAndSkipsUnsupported(t *testing.T) {
	params := []model.Param{
		{ID: 1, Name: "A", Type: model.ParamTypeString},
		{ID: 5, Name: "X", Type: "unknown-type"},
		{ID: 2, Name: "B", Type: model.ParamTypeString},
	}
	m := New(newEditor(t, params, model.Model{}))
	m.Init()

	press(m, tea.KeyTab)
	if got := m.FocusedFieldID(); got != "param-2" {
		t.Fatalf("expected unsupported field skipped, got %q", got)
	}
	press(m, tea.KeyTab)
	if got := m.FocusedFieldID(); got != "param-1" {
		t.Fatalf("expected focus to wrap, got %q", got)
	}
	press(m, tea.KeyShiftTab)
	if got := m.FocusedFieldID(); got != "param-2" {
		t.Fatalf("expected reverse wrap, got %q", got)
	}
}

func TestModel_UnsupportedTypeRendersFallback(t *testing.T) {
	params := []model.Param{{ID: 5, Name: "X", Type: "unknown-type"}}
	m := New(newEditor(t, params, model.Model{}))
	m.Init()

	view := m.View()
	if !strings.Contains(view, "Unsupported param type: unknown-type (paramId=5)") {
		t.Fatalf("fallback missing from view:\n%s", view)
	}
	if m.FocusedFieldID() != "" {
		t.Fatalf("expected nothing focusable")
	}

	want := model.Model{ParamValues: []model.ParamValue{{ParamID: 5, Value: ""}}}
	if diff := cmp.Diff(want, m.Handle().CurrentModel()); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_InputsMsgPreservesEdits(t *testing.T) {
	params := []model.Param{{ID: 1, Name: "A", Type: model.ParamTypeString}}
	initial := model.Model{ParamValues: []model.ParamValue{{ParamID: 1, Value: "v1"}}}
	m := New(newEditor(t, params, initial))
	m.Init()

	press(m, tea.KeyBackspace)
	typeText(m, "2")

	m.Update(InputsMsg{
		Params: []model.Param{
			{ID: 1, Name: "A", Type: model.ParamTypeString},
			{ID: 4, Name: "New", Type: model.ParamTypeString},
		},
		Model: model.Model{ParamValues: []model.ParamValue{
			{ParamID: 1, Value: "v1"},
			{ParamID: 4, Value: "fresh"},
		}},
	})

	want := model.Model{ParamValues: []model.ParamValue{
		{ParamID: 1, Value: "v2"},
		{ParamID: 4, Value: "fresh"},
	}}
	if diff := cmp.Diff(want, m.Handle().CurrentModel()); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}

	control, ok := m.controls[4].(*TextControl)
	if !ok || control.Value() != "fresh" {
		t.Fatalf("expected control for new param seeded with model value")
	}
	if got := m.FocusedFieldID(); got != "param-1" {
		t.Fatalf("expected focus kept on param-1, got %q", got)
	}
}

func TestModel_InputsMsgFocusFollowsParam(t *testing.T) {
	params := []model.Param{
		{ID: 1, Name: "A", Type: model.ParamTypeString},
		{ID: 2, Name: "B", Type: model.ParamTypeString},
	}
	m := New(newEditor(t, params, model.Model{}))
	m.Init()
	if got := m.FocusedFieldID(); got != "param-1" {
		t.Fatalf("expected param-1 focused, got %q", got)
	}

	m.Update(InputsMsg{Params: []model.Param{
		{ID: 4, Name: "New", Type: model.ParamTypeString},
		{ID: 2, Name: "B", Type: model.ParamTypeString},
		{ID: 1, Name: "A", Type: model.ParamTypeString},
	}})
	if got := m.FocusedFieldID(); got != "param-1" {
		t.Fatalf("expected focus to stay on param-1, got %q", got)
	}

	typeText(m, "x")
	want := model.Model{ParamValues: []model.ParamValue{
		{ParamID: 4, Value: ""},
		{ParamID: 2, Value: ""},
		{ParamID: 1, Value: "x"},
	}}
	if diff := cmp.Diff(want, m.Handle().CurrentModel()); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_InputsMsgRemovesControls(t *testing.T) {
	m := New(newEditor(t, productParams(), productModel()))
	m.Init()
	press(m, tea.KeyTab)
	press(m, tea.KeyTab)

	m.Update(InputsMsg{Params: productParams()[:1], Model: productModel()})

	if len(m.controls) != 1 {
		t.Fatalf("expected one control, got %d", len(m.controls))
	}
	if got := m.FocusedFieldID(); got != "param-1" {
		t.Fatalf("expected focus to move to remaining field, got %q", got)
	}
}

func TestModel_InputsMsgRejectsDuplicates(t *testing.T) {
	m := New(newEditor(t, productParams(), productModel()))
	m.Update(InputsMsg{Params: []model.Param{{ID: 1}, {ID: 1}}})

	if m.Err() == nil {
		t.Fatalf("expected duplicate ids to surface an error")
	}
	if !strings.Contains(m.View(), "duplicate param id") {
		t.Fatalf("expected error in view")
	}
	if len(m.Handle().CurrentModel().ParamValues) != 3 {
		t.Fatalf("rejected inputs changed the model")
	}
}

func TestModel_SaveAndCancel(t *testing.T) {
	m := New(newEditor(t, productParams(), productModel()))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.Saved() || cmd == nil {
		t.Fatalf("expected save to quit")
	}

	m = New(newEditor(t, productParams(), productModel()))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Cancelled() || m.Saved() {
		t.Fatalf("expected cancel")
	}
}

func TestModel_ViewShowsLabelsAndIDs(t *testing.T) {
	m := New(newEditor(t, productParams(), productModel(), editor.WithFieldIDPrefix("product")),
		WithTitle("Parameters"),
		WithShowFieldIDs(true),
	)
	m.Init()

	view := m.View()
	for _, want := range []string{"Parameters", "Name", "Color", "Size", "[product-1]", "[product-3]", "T-Shirt", "ctrl+s save"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModel_CustomRegistry(t *testing.T) {
	reg := DefaultRegistry().Clone()
	reg.MustRegister("color", FieldRendererFunc(NewTextControl))

	params := []model.Param{{ID: 1, Name: "Tint", Type: "color"}}
	m := New(newEditor(t, params, model.Model{}), WithRegistry(reg))
	m.Init()
	typeText(m, "#fff")

	if got, _ := m.Handle().CurrentModel().Lookup(1); got != "#fff" {
		t.Fatalf("custom renderer did not edit, got %q", got)
	}
}

func TestKeyMap_HelpListsEveryNextKey(t *testing.T) {
	keys := DefaultKeyMap()
	help := keys.helpLine()
	for _, k := range keys.Next.Keys() {
		want := k
		if k == "down" {
			want = "↓"
		}
		if !strings.Contains(help, want) {
			t.Fatalf("help %q does not mention %q", help, k)
		}
	}
}
