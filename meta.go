package enummeta

import "fmt"

// Registry is an exhaustive, read-only mapping from every variant in a
// group to a precomputed metadata value. Build one with New, NewUntyped or
// Must. A Registry is immutable and safe for concurrent use.
type Registry[E Variant, M any] struct {
	doNotImplement

	group  *Group[E]
	values []M // indexed by variant ordinal
}

// New creates a Registry over group g from bindings. The bindings must
// cover every variant in g exactly once; otherwise New returns an error
// wrapping ErrIncompleteBinding, ErrDuplicateBinding or ErrUnknownVariant,
// identifying the offending variant.
func New[E Variant, M any](g *Group[E], bindings []Binding[E, M]) (*Registry[E, M], error) {
	bound := make([]E, len(bindings))
	for i, b := range bindings {
		bound[i] = b.Variant
	}
	ords, err := tableOrdinals(g, bound)
	if err != nil {
		return nil, err
	}

	values := make([]M, g.Len())
	for i, b := range bindings {
		values[ords[i]] = b.Value
	}
	return &Registry[E, M]{group: g, values: values}, nil
}

// NewUntyped is like New, but takes dynamically-typed values. In addition
// to New's validation it checks that every value is of the metadata type M,
// returning an error wrapping ErrTypeMismatch if one is not. A nil value is
// only accepted if M is a nilable type.
func NewUntyped[E Variant, M any](g *Group[E], bindings []Untyped[E]) (*Registry[E, M], error) {
	typed := make([]Binding[E, M], len(bindings))
	for i, b := range bindings {
		v, ok := b.Value.(M)
		if !ok {
			var want M
			return nil, fmt.Errorf("group %q: %w: variant %v has a %T value, want %T", g.name, ErrTypeMismatch, b.Variant, b.Value, want)
		}
		typed[i] = Binding[E, M]{Variant: b.Variant, Value: v}
	}
	return New(g, typed)
}

// Must is like New but panics on error. Intended for package-level variable
// construction, where an invalid binding table is a programming error.
func Must[E Variant, M any](g *Group[E], bindings []Binding[E, M]) *Registry[E, M] {
	r, err := New(g, bindings)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the metadata bound to variant v. It is total over the
// registry's group: every member has a binding, so Lookup cannot fail.
// It panics if v is not a member of the group.
func (r *Registry[E, M]) Lookup(v E) M {
	ord, ok := r.group.index.Of(v)
	if !ok {
		panic(fmt.Sprintf("enummeta: variant %v is not in group %q", v, r.group.name))
	}
	return r.values[ord]
}

// Func returns Lookup as a standalone callable, for attaching metadata
// access where a method value is wanted.
func (r *Registry[E, M]) Func() func(E) M {
	return r.Lookup
}

// All returns every variant the registry covers, in group declaration order.
func (r *Registry[E, M]) All() []E {
	return r.group.Variants()
}

// Len reports the number of variants in the registry.
func (r *Registry[E, M]) Len() int {
	return r.group.Len()
}

// GroupName returns the name of the group the registry is built over.
func (r *Registry[E, M]) GroupName() string {
	return r.group.name
}
