package tree

import (
	"sort"
	"sync"

	"github.com/vango-dev/stringjsx/pkg/render"
)

// Registry maps component names used in documents to pseudo-components.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]render.Component
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]render.Component)}
}

// Register adds or replaces a component.
func (r *Registry) Register(name string, c render.Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[name] = c
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (render.Component, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
