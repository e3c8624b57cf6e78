package model

// ParamType identifies the kind of value a parameter holds. Renderers are
// resolved by this tag; values outside the known set are legal data and
// degrade to a fallback at render time.
type ParamType string

const (
	// ParamTypeString is a single-line free-text parameter.
	ParamTypeString ParamType = "string"
)

// Param describes one editable parameter. IDs are stable keys and must be
// unique within a definition list.
type Param struct {
	ID   int       `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
	Type ParamType `json:"type" yaml:"type"`
}

// ParamValue holds the string value of a single parameter.
type ParamValue struct {
	ParamID int    `json:"paramId" yaml:"paramId"`
	Value   string `json:"value" yaml:"value"`
}

// Model is the serialisable snapshot of parameter values.
type Model struct {
	ParamValues []ParamValue `json:"paramValues" yaml:"paramValues"`
}

// Clone returns a copy that shares no backing storage with m.
func (m Model) Clone() Model {
	if m.ParamValues == nil {
		return Model{}
	}
	return Model{ParamValues: append([]ParamValue(nil), m.ParamValues...)}
}

// Lookup returns the value recorded for id. When the model repeats an id the
// last occurrence wins.
func (m Model) Lookup(id int) (string, bool) {
	for i := len(m.ParamValues) - 1; i >= 0; i-- {
		if m.ParamValues[i].ParamID == id {
			return m.ParamValues[i].Value, true
		}
	}
	return "", false
}

// Index maps parameter ids to values. A repeated id keeps its last value.
func (m Model) Index() map[int]string {
	out := make(map[int]string, len(m.ParamValues))
	for _, pv := range m.ParamValues {
		out[pv.ParamID] = pv.Value
	}
	return out
}

// CloneParams copies a definition slice.
func CloneParams(params []Param) []Param {
	if params == nil {
		return nil
	}
	return append([]Param(nil), params...)
}
