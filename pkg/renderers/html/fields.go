package html

import (
	stdhtml "html"
	"net/url"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/fields"
	"github.com/goliatone/go-paramedit/pkg/model"
)

// Templates resolves named templates from the renderer's template set.
type Templates interface {
	Execute(name string, data pongo2.Context) (string, error)
}

// FieldRenderer renders one field and decodes its submitted value.
type FieldRenderer interface {
	Render(tpl Templates, field editor.Field) (string, error)
	// Decode reads the field from a submitted form and calls onEdit when a
	// value is present.
	Decode(field editor.Field, form url.Values, onEdit func(string))
}

// DefaultRegistry returns a registry with the built-in text input.
func DefaultRegistry() *fields.Registry[FieldRenderer] {
	reg := fields.NewRegistry[FieldRenderer]()
	reg.MustRegister(model.ParamTypeString, TextField{})
	return reg
}

// TextField renders a single-line text input.
type TextField struct{}

func (TextField) Render(tpl Templates, field editor.Field) (string, error) {
	return tpl.Execute(stringTemplate, fieldContext(field))
}

func (TextField) Decode(field editor.Field, form url.Values, onEdit func(string)) {
	values, ok := form[field.ID]
	if !ok || len(values) == 0 {
		return
	}
	onEdit(values[0])
}

func fieldContext(field editor.Field) pongo2.Context {
	return pongo2.Context{
		"id":       field.ID,
		"param_id": field.Param.ID,
		"label":    plainLabel(field.Param.Name),
		"type":     string(field.Param.Type),
		"value":    field.Value,
	}
}

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// plainLabel strips markup from a display name. The result is plain text and
// is escaped again by the template.
func plainLabel(raw string) string {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(stdhtml.UnescapeString(labelPolicy.Sanitize(raw)))
}
