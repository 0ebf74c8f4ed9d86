package algorithms

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a signer factory to the registry
// Called by algorithm implementations in their init() functions
// Registering an existing name replaces the previous factory
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[name] = factory
}

// New creates a Signer for the named algorithm bound to key
// Returns ErrUnsupportedAlgorithm if no factory is registered under name
func New(name string, key any) (Signer, error) {
	mu.RLock()
	factory, exists := factories[name]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
	return factory(key)
}

// List returns all registered algorithm names in sorted order
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
