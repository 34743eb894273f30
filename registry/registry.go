// Package registry provides process-wide named registries. A registry
// registered here lives for the remainder of the process; there is no
// removal. This supports the pattern where a package constructs its
// metadata registries at init time under well-known names and other
// packages retrieve them by name.
package registry

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gostdlib/base/concurrency/sync"

	"github.com/bearlytools/enummeta"
)

var (
	mu    sync.RWMutex
	table = map[string]enummeta.Any{}
)

// Register stores r under name. It panics if name is already taken: double
// registration is a process-initialization bug, not a runtime condition.
func Register(name string, r enummeta.Any) {
	if r == nil {
		panic(fmt.Sprintf("cannot register a nil registry as %q", name))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, ok := table[name]; ok {
		panic(fmt.Sprintf("cannot register %q twice", name))
	}
	table[name] = r
}

// Eager returns the eager Registry stored under name. It returns nil if
// nothing is registered under name, or if what is registered is not an
// eager registry over variant type E and metadata type M.
func Eager[E enummeta.Variant, M any](name string) *enummeta.Registry[E, M] {
	mu.RLock()
	defer mu.RUnlock()

	r, _ := table[name].(*enummeta.Registry[E, M])
	return r
}

// Lazy returns the Lazy registry stored under name. It returns nil if
// nothing is registered under name, or if what is registered is not a lazy
// registry over variant type E and metadata type M.
func Lazy[E enummeta.Variant, M any](name string) *enummeta.Lazy[E, M] {
	mu.RLock()
	defer mu.RUnlock()

	l, _ := table[name].(*enummeta.Lazy[E, M])
	return l
}

// Lookup returns whatever is stored under name as its non-generic view,
// or nil if nothing is registered under name.
func Lookup(name string) enummeta.Any {
	mu.RLock()
	defer mu.RUnlock()
	return table[name]
}

// Names returns the names of all registered registries, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(table))
}
