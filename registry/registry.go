package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/sopaco/colony"
)

var (
	mu       sync.RWMutex
	variants = make(map[string]entry)
)

type entry struct {
	params  string
	factory colony.Factory
}

// Register makes a colony variant available under name, the way
// database/sql drivers register under a driver name. params is a short
// human-readable description of the args the variant accepts after the
// colon in --colony name:args, shown
// by the CLI's --list flag. Register panics if factory is nil or name is
// already registered, since both are programmer errors caught at init time.
func Register(name string, params string, factory colony.Factory) {
	mu.Lock()
	defer mu.Unlock()

	if factory == nil {
		panic("registry: Register factory is nil for " + name)
	}
	if _, dup := variants[name]; dup {
		panic("registry: Register called twice for " + name)
	}
	variants[name] = entry{params: params, factory: factory}
}

// Lookup returns the Factory registered under name.
func Lookup(name string) (colony.Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown colony variant %q", name)
	}
	return e.factory, nil
}

// List returns every registered variant name, sorted, paired with its
// params description.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, len(names))
	for i, name := range names {
		e := variants[name]
		if e.params == "" {
			out[i] = name
		} else {
			out[i] = fmt.Sprintf("%s (%s)", name, e.params)
		}
	}
	return out
}
