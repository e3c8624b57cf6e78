// Package fields maps parameter types to the renderer capability a frontend
// uses to display and edit them. Each frontend picks its own renderer contract
// R; the registry only handles lookup, so adding a new kind means registering
// one more entry rather than touching the editor core.
package fields

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-paramedit/pkg/model"
)

// Registry stores renderers keyed by parameter type.
type Registry[R any] struct {
	mu        sync.RWMutex
	renderers map[model.ParamType]R
}

// NewRegistry creates an empty registry.
func NewRegistry[R any]() *Registry[R] {
	return &Registry[R]{
		renderers: make(map[model.ParamType]R),
	}
}

// Register associates a renderer with a parameter type. Existing entries are
// replaced.
func (r *Registry[R]) Register(t model.ParamType, renderer R) error {
	key := normalize(t)
	if key == "" {
		return fmt.Errorf("fields: param type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.renderers[key] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for default wiring.
func (r *Registry[R]) MustRegister(t model.ParamType, renderer R) {
	if err := r.Register(t, renderer); err != nil {
		panic(err)
	}
}

// Resolve returns the renderer registered for t. The boolean is false for
// unknown types so callers can render their fallback.
func (r *Registry[R]) Resolve(t model.ParamType) (R, bool) {
	var zero R
	if r == nil {
		return zero, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[normalize(t)]
	if !ok {
		return zero, false
	}
	return renderer, true
}

// Has reports whether a renderer is registered for t.
func (r *Registry[R]) Has(t model.ParamType) bool {
	_, ok := r.Resolve(t)
	return ok
}

// Types returns the registered parameter types in sorted order.
func (r *Registry[R]) Types() []model.ParamType {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]model.ParamType, 0, len(r.renderers))
	for t := range r.renderers {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Clone returns a copy so callers can extend a default registry without
// mutating the shared instance. A nil registry clones to an empty one.
func (r *Registry[R]) Clone() *Registry[R] {
	if r == nil {
		return NewRegistry[R]()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry[R]()
	for t, renderer := range r.renderers {
		cloned.renderers[t] = renderer
	}
	return cloned
}

func normalize(t model.ParamType) model.ParamType {
	return model.ParamType(strings.TrimSpace(string(t)))
}

// UnsupportedMessage is the fallback text every frontend shows for a
// parameter whose type has no registered renderer.
func UnsupportedMessage(p model.Param) string {
	return fmt.Sprintf("Unsupported param type: %s (paramId=%d)", p.Type, p.ID)
}
