package html

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/fields"
)

// Renderer turns an editor's fields into an HTML form.
type Renderer struct {
	set      *pongo2.TemplateSet
	registry *fields.Registry[FieldRenderer]
	theme    *theme.RendererConfig
	logger   *zap.Logger

	mu        sync.RWMutex
	templates map[string]*pongo2.Template
}

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = DefaultRegistry()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return &Renderer{
		set:       pongo2.NewSet("paramedit", pongo2.NewFSLoader(cfg.templateFS)),
		registry:  cfg.registry,
		theme:     cfg.theme,
		logger:    cfg.logger,
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// Render produces the form markup for the editor's current state.
func (r *Renderer) Render(ctx context.Context, ed *editor.Editor) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ed == nil {
		return nil, fmt.Errorf("html renderer: editor is required")
	}

	var markup []string
	for _, field := range ed.Fields() {
		out, err := r.renderField(field)
		if err != nil {
			return nil, fmt.Errorf("html renderer: field %s: %w", field.ID, err)
		}
		markup = append(markup, out)
	}

	result, err := r.Execute(formTemplate, pongo2.Context{
		"fields": markup,
		"theme":  themeContext(r.theme),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render form: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) renderField(field editor.Field) (string, error) {
	renderer, ok := r.registry.Resolve(field.Param.Type)
	if !ok {
		r.logger.Debug("no renderer for param type",
			zap.Int("param_id", field.Param.ID),
			zap.String("type", string(field.Param.Type)),
		)
		return r.Execute(unsupportedTemplate, fieldContext(field))
	}
	return renderer.Render(r, field)
}

// ApplySubmission decodes posted values for every supported field and
// records them as edits. Fields missing from form keep their value.
func (r *Renderer) ApplySubmission(ed *editor.Editor, form url.Values) error {
	if ed == nil {
		return fmt.Errorf("html renderer: editor is required")
	}
	for _, field := range ed.Fields() {
		renderer, ok := r.registry.Resolve(field.Param.Type)
		if !ok {
			continue
		}
		var editErr error
		renderer.Decode(field, form, func(next string) {
			editErr = ed.Edit(field.Param.ID, next)
		})
		if editErr != nil {
			return fmt.Errorf("html renderer: apply %s: %w", field.ID, editErr)
		}
	}
	return nil
}

// Execute renders a named template from the renderer's set, caching parsed
// templates.
func (r *Renderer) Execute(name string, data pongo2.Context) (string, error) {
	tpl, err := r.template(name)
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return out, nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	tpl, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	tpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", name, err)
	}

	r.mu.Lock()
	r.templates[name] = tpl
	r.mu.Unlock()
	return tpl, nil
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	vars := cfg.CSSVars
	if len(vars) == 0 && len(cfg.Tokens) > 0 {
		vars = make(map[string]string, len(cfg.Tokens))
		for key, value := range cfg.Tokens {
			vars["--"+key] = value
		}
	}
	return map[string]any{
		"name":     cfg.Theme,
		"variant":  cfg.Variant,
		"css_vars": cssVarsStyle(vars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(".paramedit {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
