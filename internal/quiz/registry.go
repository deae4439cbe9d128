package quiz

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a catalog on demand.
type Factory func() (*Catalog, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a named catalog factory.
// Typically called from an init() function.
// Panics if a catalog with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("quiz: catalog %q already registered", name))
	}
	factories[name] = f
}

// List returns the registered catalog names, sorted.
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

// Open builds the catalog registered under name.
func Open(name string) (*Catalog, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("quiz: unknown catalog %q", name)
	}
	return f()
}

// Exists checks if a catalog with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
