package enummeta

import (
	"fmt"
	"sync/atomic"

	"github.com/gostdlib/base/concurrency/sync"
	"github.com/pkg/errors"
)

// Lazy is an exhaustive mapping from every variant in a group to a deferred
// computation. Each computation runs at most once for the registry's
// lifetime, on the variant's first Lookup; the result is cached and every
// later Lookup returns a pointer to the same value. Lazy is safe for
// concurrent use.
type Lazy[E Variant, M any] struct {
	doNotImplement

	group    *Group[E]
	computes []Compute[M] // indexed by variant ordinal
	cells    []lazyCell[M]
}

// lazyCell guards the one-time initialization of a single variant's value.
// Each cell is independent: blocking on one variant never affects another.
//
// done is only set to true after val is written, under mu. The lock-free
// fast path in Lookup relies on that ordering.
type lazyCell[M any] struct {
	done atomic.Bool
	mu   sync.Mutex
	val  M
}

// NewLazy creates a Lazy registry over group g from bindings. The bindings
// must cover every variant in g exactly once, with the same validation and
// errors as New; a binding with a nil computation is rejected with an error
// wrapping ErrNilCompute. No computation runs during construction.
func NewLazy[E Variant, M any](g *Group[E], bindings []LazyBinding[E, M]) (*Lazy[E, M], error) {
	bound := make([]E, len(bindings))
	for i, b := range bindings {
		if b.Compute == nil {
			return nil, fmt.Errorf("group %q: %w: variant %v", g.name, ErrNilCompute, b.Variant)
		}
		bound[i] = b.Variant
	}
	ords, err := tableOrdinals(g, bound)
	if err != nil {
		return nil, err
	}

	computes := make([]Compute[M], g.Len())
	for i, b := range bindings {
		computes[ords[i]] = b.Compute
	}
	return &Lazy[E, M]{
		group:    g,
		computes: computes,
		cells:    make([]lazyCell[M], g.Len()),
	}, nil
}

// MustLazy is like NewLazy but panics on error. Intended for package-level
// variable construction, where an invalid binding table is a programming
// error.
func MustLazy[E Variant, M any](g *Group[E], bindings []LazyBinding[E, M]) *Lazy[E, M] {
	l, err := NewLazy(g, bindings)
	if err != nil {
		panic(err)
	}
	return l
}

// Lookup returns a pointer to the metadata for variant v, computing it if
// this is the variant's first lookup. Concurrent lookups of the same
// variant block until the one that got there first finishes, then observe
// the same pointer; the computation never runs twice after a success.
// Lookups of other variants proceed independently.
//
// If the computation returns an error, the error is returned wrapped and
// nothing is cached: the cell is left empty, so a later Lookup retries the
// computation. A panic inside the computation likewise leaves the cell
// empty. Lookup panics if v is not a member of the group.
func (l *Lazy[E, M]) Lookup(v E) (*M, error) {
	ord, ok := l.group.index.Of(v)
	if !ok {
		panic(fmt.Sprintf("enummeta: variant %v is not in group %q", v, l.group.name))
	}
	c := &l.cells[ord]

	if c.done.Load() {
		return &c.val, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done.Load() {
		return &c.val, nil
	}

	val, err := l.computes[ord]()
	if err != nil {
		return nil, errors.Wrapf(err, "computing metadata for variant %v in group %q", v, l.group.name)
	}
	c.val = val
	c.done.Store(true)
	return &c.val, nil
}

// Func returns Lookup as a standalone callable, for attaching metadata
// access where a method value is wanted.
func (l *Lazy[E, M]) Func() func(E) (*M, error) {
	return l.Lookup
}

// All returns every variant the registry covers, in group declaration order.
func (l *Lazy[E, M]) All() []E {
	return l.group.Variants()
}

// Len reports the number of variants in the registry.
func (l *Lazy[E, M]) Len() int {
	return l.group.Len()
}

// GroupName returns the name of the group the registry is built over.
func (l *Lazy[E, M]) GroupName() string {
	return l.group.name
}
