package enummeta

import "fmt"

// Binding associates one variant with a precomputed metadata value.
type Binding[E Variant, M any] struct {
	Variant E
	Value   M
}

// Compute produces a metadata value on demand. It takes no arguments; any
// inputs it needs are captured in its closure.
type Compute[M any] func() (M, error)

// LazyBinding associates one variant with a deferred computation. The
// computation runs at most once per registry, on the variant's first lookup.
type LazyBinding[E Variant, M any] struct {
	Variant E
	Compute Compute[M]
}

// Untyped associates one variant with a dynamically-typed value. Use this
// when the binding table is assembled away from compile-time type
// information; NewUntyped checks every value against the registry's metadata
// type during validation.
type Untyped[E Variant] struct {
	Variant E
	Value   any
}

// tableOrdinals validates that the bound variants cover group g exactly
// once and returns the ordinal for each, positionally matching bound. This is
// the shared validation pass behind every registry constructor.
func tableOrdinals[E Variant](g *Group[E], bound []E) ([]int, error) {
	ords := make([]int, len(bound))
	seen := make([]bool, g.Len())

	for i, v := range bound {
		ord, ok := g.index.Of(v)
		if !ok {
			return nil, fmt.Errorf("group %q: %w: %v", g.name, ErrUnknownVariant, v)
		}
		if seen[ord] {
			return nil, fmt.Errorf("group %q: %w: variant %v is bound more than once", g.name, ErrDuplicateBinding, v)
		}
		seen[ord] = true
		ords[i] = ord
	}

	var missing []E
	for ord, ok := range seen {
		if !ok {
			missing = append(missing, g.index.Variants()[ord])
		}
	}
	if len(missing) != 0 {
		return nil, fmt.Errorf("group %q: %w: variants %v have no binding", g.name, ErrIncompleteBinding, missing)
	}
	return ords, nil
}
