package templates

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Registry stores templates in declaration order. Lookups never fail: an
// unknown id resolves to the first registered template.
type Registry struct {
	templates []Template
	byID      map[string]int
	validate  *validator.Validate
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:     make(map[string]int),
		validate: validator.New(),
	}
}

// Register adds a template. An incomplete template fails fast here instead of
// rendering with silently missing styles: the id and name must be set and
// every required region must have a style entry. Duplicate ids are rejected.
func (r *Registry) Register(t Template) error {
	if err := r.validate.Struct(t); err != nil {
		return fmt.Errorf("templates: invalid template %q: %w", t.ID, err)
	}
	if _, exists := r.byID[t.ID]; exists {
		return fmt.Errorf("templates: template %q already registered", t.ID)
	}
	for _, region := range RequiredRegions {
		if _, ok := t.Styles[region]; !ok {
			return fmt.Errorf("templates: template %q missing style for region %q", t.ID, region)
		}
	}

	r.byID[t.ID] = len(r.templates)
	r.templates = append(r.templates, t)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring
// of the built-in set.
func (r *Registry) MustRegister(t Template) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// List returns all templates in registration order.
func (r *Registry) List() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Resolve returns the template with the given id, falling back to the first
// registered template when the id matches no entry. Resolving against an
// empty registry is a programming error and panics.
func (r *Registry) Resolve(id string) Template {
	if len(r.templates) == 0 {
		panic("templates: resolve on empty registry")
	}
	if i, ok := r.byID[id]; ok {
		return r.templates[i]
	}
	return r.templates[0]
}

// Has reports whether a template id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}
