/*
Package enummeta attaches metadata to the members of a closed enumeration
set. The metadata can be of an arbitrary type, but must be the same type for
all variants of a set, although the values can differ. This fills the
use-case where enum variants are flags for something else, such as HTTP
status codes, or parts of a syntax tree that carry an explicit string
rendering when concretized.

The metadata is bound at a separate location from the declaration of the
enum. A Group declares the complete variant set once, and a Registry binds a
value to every variant in it:

	type Colour uint8

	const (
		Red Colour = iota
		Orange
		Green
	)

	var colours = enummeta.MustGroup("Colour", Red, Orange, Green)

	var names = enummeta.Must(colours, []enummeta.Binding[Colour, string]{
		{Red, "Red"},
		{Orange, "Orange"},
		{Green, "Green"},
	})

	names.Lookup(Orange) // "Orange"

For values that are expensive to produce, a Lazy registry computes each
variant's value at most once, on first lookup, and hands back the same
pointer on every call after that:

	var renders = enummeta.MustLazy(colours, []enummeta.LazyBinding[Colour, string]{
		{Red, func() (string, error) { return render(1, "Red"), nil }},
		{Orange, func() (string, error) { return render(2, "Orange"), nil }},
		{Green, func() (string, error) { return render(3, "Green"), nil }},
	})

Every constructor validates that the binding table covers the group's
variants exactly once, before any lookup is possible. Lookup itself never
fails once a registry is built, with the single exception of a lazy
computation returning an error, which propagates to the caller.
*/
package enummeta

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/bearlytools/enummeta/internal/ordinal"
	"github.com/bearlytools/enummeta/internal/pragma"
)

type doNotImplement pragma.DoNotImplement

// Variant represents any integer-kinded enumeration type.
type Variant interface {
	constraints.Integer
}

// Any is the non-generic view of a registry, for storage where the variant
// and metadata types are erased. Both Registry and Lazy implement it.
type Any interface {
	// GroupName returns the name of the variant group the registry is built over.
	GroupName() string
	// Len reports the number of variants in the registry.
	Len() int

	doNotImplement
}

// Group describes the complete variant set of an enumeration. It is the
// source of truth a registry validates its binding table against. A Group is
// immutable once constructed and safe for concurrent use.
type Group[E Variant] struct {
	name  string
	index *ordinal.Index[E]
}

// NewGroup creates a Group named name over the given variants. Declaration
// order is preserved and is the order Variants and All report. It returns an
// error wrapping ErrEmptyGroup if no variants are given, or
// ErrDuplicateVariant if a value appears more than once.
func NewGroup[E Variant](name string, variants ...E) (*Group[E], error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("group %q: %w", name, ErrEmptyGroup)
	}
	vs := make([]E, len(variants))
	copy(vs, variants)

	ix, err := ordinal.New(vs)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w: %v", name, ErrDuplicateVariant, err)
	}
	return &Group[E]{name: name, index: ix}, nil
}

// MustGroup is like NewGroup but panics on error. Intended for package-level
// variable construction, where a bad variant set is a programming error.
func MustGroup[E Variant](name string, variants ...E) *Group[E] {
	g, err := NewGroup(name, variants...)
	if err != nil {
		panic(err)
	}
	return g
}

// Name returns the name of the group.
func (g *Group[E]) Name() string {
	return g.name
}

// Len reports the number of variants in the group.
func (g *Group[E]) Len() int {
	return g.index.Len()
}

// Variants returns the group's variants in declaration order.
func (g *Group[E]) Variants() []E {
	vs := make([]E, g.index.Len())
	copy(vs, g.index.Variants())
	return vs
}

// Contains reports whether v is a member of the group.
func (g *Group[E]) Contains(v E) bool {
	_, ok := g.index.Of(v)
	return ok
}
