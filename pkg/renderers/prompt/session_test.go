package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/model"
)

type stubDriver struct {
	inputs       []string
	err          error
	configs      []InputConfig
	infoMessages []string
	inputPos     int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.configs = append(s.configs, cfg)
	if s.err != nil {
		return "", s.err
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newEditor(t *testing.T, params []model.Param, m model.Model) *editor.Editor {
	t.Helper()
	ed, err := editor.New(params, m)
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	return ed
}

func TestSession_EditsEachStringField(t *testing.T) {
	params := []model.Param{
		{ID: 1, Name: "Name", Type: model.ParamTypeString},
		{ID: 2, Name: "Color", Type: model.ParamTypeString},
		{ID: 3, Name: "Size", Type: model.ParamTypeString},
	}
	initial := model.Model{ParamValues: []model.ParamValue{
		{ParamID: 1, Value: "T-Shirt"},
		{ParamID: 3, Value: "M"},
	}}
	driver := &stubDriver{inputs: []string{"T-Shirt", "Red", "L"}}

	got, err := New(WithPromptDriver(driver)).Run(context.Background(), newEditor(t, params, initial))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := model.Model{ParamValues: []model.ParamValue{
		{ParamID: 1, Value: "T-Shirt"},
		{ParamID: 2, Value: "Red"},
		{ParamID: 3, Value: "L"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}

	wantConfigs := []InputConfig{
		{Message: "Name", Default: "T-Shirt", Help: "param-1"},
		{Message: "Color", Default: "", Help: "param-2"},
		{Message: "Size", Default: "M", Help: "param-3"},
	}
	if diff := cmp.Diff(wantConfigs, driver.configs); diff != "" {
		t.Fatalf("prompt configs mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_UnsupportedTypeAnnounced(t *testing.T) {
	params := []model.Param{{ID: 5, Name: "X", Type: "unknown-type"}}
	driver := &stubDriver{}

	got, err := New(WithPromptDriver(driver)).Run(context.Background(), newEditor(t, params, model.Model{}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if diff := cmp.Diff([]string{"Unsupported param type: unknown-type (paramId=5)"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	want := model.Model{ParamValues: []model.ParamValue{{ParamID: 5, Value: ""}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_AbortKeepsEarlierEdits(t *testing.T) {
	params := []model.Param{{ID: 1, Name: "A", Type: model.ParamTypeString}}
	ed := newEditor(t, params, model.Model{})
	driver := &stubDriver{err: ErrAborted}

	_, err := New(WithPromptDriver(driver)).Run(context.Background(), ed)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSession_CancelledContext(t *testing.T) {
	params := []model.Param{{ID: 1, Name: "A", Type: model.ParamTypeString}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithPromptDriver(&stubDriver{})).Run(ctx, newEditor(t, params, model.Model{}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSession_CustomRegistry(t *testing.T) {
	reg := DefaultRegistry().Clone()
	reg.MustRegister("upper", FieldRendererFunc(func(_ context.Context, _ PromptDriver, field editor.Field, onEdit func(string)) error {
		onEdit("FIXED")
		return nil
	}))
	params := []model.Param{{ID: 9, Name: "Code", Type: "upper"}}

	got, err := New(WithPromptDriver(&stubDriver{}), WithRegistry(reg)).Run(context.Background(), newEditor(t, params, model.Model{}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v, _ := got.Lookup(9); v != "FIXED" {
		t.Fatalf("custom renderer not used, got %q", v)
	}
}
