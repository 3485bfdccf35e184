package concierge

import (
	"fmt"
	"strings"
	"sync"
)

// StaticToolCatalog is the default in-memory collection of tool specs a
// session advertises to the model. Lookup is by lower-cased name;
// registration order is preserved for prompt rendering.
type StaticToolCatalog struct {
	mu    sync.RWMutex
	specs map[string]ToolSpec
	order []string
}

// NewStaticToolCatalog constructs a catalog seeded with the provided specs.
func NewStaticToolCatalog(specs []ToolSpec) *StaticToolCatalog {
	catalog := &StaticToolCatalog{
		specs: make(map[string]ToolSpec),
	}
	for _, spec := range specs {
		_ = catalog.Register(spec) // skip invalid entries silently
	}
	return catalog
}

// Register adds a tool spec to the catalog. Duplicate names return an error.
func (c *StaticToolCatalog) Register(spec ToolSpec) error {
	key := strings.ToLower(strings.TrimSpace(spec.Name))
	if key == "" {
		return fmt.Errorf("tool name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.specs[key]; exists {
		return fmt.Errorf("tool %s already registered", spec.Name)
	}
	c.specs[key] = spec
	c.order = append(c.order, key)
	return nil
}

// Lookup returns the spec for a name if present.
func (c *StaticToolCatalog) Lookup(name string) (ToolSpec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	spec, ok := c.specs[strings.ToLower(strings.TrimSpace(name))]
	return spec, ok
}

// Specs returns a snapshot of the tool specifications in registration order.
func (c *StaticToolCatalog) Specs() []ToolSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()

	specs := make([]ToolSpec, 0, len(c.order))
	for _, key := range c.order {
		specs = append(specs, c.specs[key])
	}
	return specs
}
