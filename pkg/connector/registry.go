package connector

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages connector plugins keyed by integration type.
type Registry struct {
	mu         sync.RWMutex
	connectors map[string]Connector
}

// NewRegistry creates a new connector registry.
func NewRegistry() *Registry {
	return &Registry{
		connectors: make(map[string]Connector),
	}
}

// Register registers a connector under its Name().
func (r *Registry) Register(c Connector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connectors[c.Name()] = c
}

// Get retrieves a connector by integration type.
func (r *Registry) Get(name string) (Connector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.connectors[name]
	return c, ok
}

// MustGet returns a connector or panics.
func (r *Registry) MustGet(name string) Connector {
	c, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("connector not found: %s", name))
	}
	return c
}

// List returns all registered integration types, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.connectors))
	for name := range r.connectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global default registry. Connectors register
// themselves in init().
var DefaultRegistry = NewRegistry()

// Register registers a connector in the default registry.
func Register(c Connector) {
	DefaultRegistry.Register(c)
}

// Get retrieves a connector from the default registry.
func Get(name string) (Connector, bool) {
	return DefaultRegistry.Get(name)
}

// List returns all integration types in the default registry.
func List() []string {
	return DefaultRegistry.List()
}
