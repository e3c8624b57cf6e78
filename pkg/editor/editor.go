package editor

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/pkg/model"
)

// Handle is the pull-style accessor handed to the owning host.
type Handle interface {
	CurrentModel() model.Model
}

// Field is the per-parameter view a frontend renders.
type Field struct {
	Param model.Param
	Value string
	// ID is the deterministic "<prefix>-<paramId>" identifier attached to
	// the rendered input.
	ID string
}

// Editor owns the edit buffer for one mounted parameter form. It is not safe
// for concurrent use; callers deliver events from a single loop.
type Editor struct {
	params   []model.Param
	values   map[int]string
	onChange ChangeFunc
	prefix   string
	logger   *zap.Logger
}

var _ Handle = (*Editor)(nil)

// New mounts an editor for params seeded from m. Duplicate parameter ids are
// rejected.
func New(params []model.Param, m model.Model, options ...Option) (*Editor, error) {
	e := &Editor{
		prefix: DefaultFieldIDPrefix,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	if err := e.apply(params, m, nil); err != nil {
		return nil, err
	}
	return e, nil
}

// SetInputs is the external input-change hook. It reconciles the new
// definitions and model against the current buffer so values the user
// already typed survive. On error the editor keeps its previous state.
func (e *Editor) SetInputs(params []model.Param, m model.Model) error {
	return e.apply(params, m, e.values)
}

func (e *Editor) apply(params []model.Param, m model.Model, previous map[int]string) error {
	if err := model.ValidateParams(params); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	if stale := staleIDs(params, m); len(stale) > 0 {
		e.logger.Debug("ignoring model values for unknown params", zap.Ints("param_ids", stale))
	}

	e.params = model.CloneParams(params)
	e.values = Reconcile(e.params, m, previous)
	e.logger.Debug("reconciled inputs",
		zap.Int("params", len(e.params)),
		zap.Int("model_values", len(m.ParamValues)),
	)
	e.notify()
	return nil
}

// Edit records a user-driven change for paramID. Edits bypass
// reconciliation.
func (e *Editor) Edit(paramID int, value string) error {
	if _, ok := e.values[paramID]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownParam, paramID)
	}
	e.values[paramID] = value
	e.logger.Debug("param edited", zap.Int("param_id", paramID), zap.Int("length", len(value)))
	e.notify()
	return nil
}

// CurrentModel returns a snapshot with exactly one value per current
// parameter, in definition order.
func (e *Editor) CurrentModel() model.Model {
	values := make([]model.ParamValue, 0, len(e.params))
	for _, p := range e.params {
		values = append(values, model.ParamValue{ParamID: p.ID, Value: e.values[p.ID]})
	}
	return model.Model{ParamValues: values}
}

// Handle exposes the accessor without the mutation surface.
func (e *Editor) Handle() Handle {
	return handle{editor: e}
}

// Value reports the current value for paramID.
func (e *Editor) Value(paramID int) (string, bool) {
	value, ok := e.values[paramID]
	return value, ok
}

// Params returns a copy of the current definitions.
func (e *Editor) Params() []model.Param {
	return model.CloneParams(e.params)
}

// Fields returns the render views for every parameter in definition order.
func (e *Editor) Fields() []Field {
	out := make([]Field, 0, len(e.params))
	for _, p := range e.params {
		out = append(out, Field{
			Param: p,
			Value: e.values[p.ID],
			ID:    FieldID(e.prefix, p.ID),
		})
	}
	return out
}

// FieldID returns the identifier of the rendered input for paramID.
func (e *Editor) FieldID(paramID int) string {
	return FieldID(e.prefix, paramID)
}

func (e *Editor) notify() {
	if e.onChange == nil {
		return
	}
	e.onChange(e.CurrentModel())
}

// FieldID joins prefix and paramID as "<prefix>-<paramID>".
func FieldID(prefix string, paramID int) string {
	if prefix == "" {
		prefix = DefaultFieldIDPrefix
	}
	return prefix + "-" + strconv.Itoa(paramID)
}

type handle struct {
	editor *Editor
}

func (h handle) CurrentModel() model.Model {
	return h.editor.CurrentModel()
}
