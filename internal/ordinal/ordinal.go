// Package ordinal resolves enum variant values to dense ordinals. An ordinal
// is the variant's position in declaration order, 0..Len()-1, which lets
// callers back per-variant storage with a fixed-size slice instead of a map.
package ordinal

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// maxSpan is the largest value range we back with a flat slice. Enums are
// usually small and contiguous, so nearly everything takes the slice path.
// Anything wider falls back to a map.
const maxSpan = 1 << 12

// Index maps the values of an integer enum type to dense ordinals.
// Construct with New. The zero value is not usable.
type Index[E constraints.Integer] struct {
	variants []E

	// flat[int64(v)-low] holds the ordinal for value v, -1 for gaps.
	// Only one of flat/sparse is set.
	flat   []int32
	low    int64
	sparse map[E]int
}

// New creates an Index over variants, assigning ordinals in the order given.
// It returns an error if variants is empty or a value appears more than once.
func New[E constraints.Integer](variants []E) (*Index[E], error) {
	if len(variants) == 0 {
		return nil, errors.New("no variants given")
	}

	ix := &Index[E]{variants: variants}

	low, high := int64(variants[0]), int64(variants[0])
	for _, v := range variants[1:] {
		if int64(v) < low {
			low = int64(v)
		}
		if int64(v) > high {
			high = int64(v)
		}
	}

	// A negative span means the int64 conversions wrapped (giant uint64
	// values); the map path handles that too.
	if span := high - low + 1; span > 0 && span <= maxSpan {
		ix.low = low
		ix.flat = make([]int32, span)
		for i := range ix.flat {
			ix.flat[i] = -1
		}
		for ord, v := range variants {
			slot := int64(v) - low
			if ix.flat[slot] != -1 {
				return nil, errors.Errorf("value %v appears more than once", v)
			}
			ix.flat[slot] = int32(ord)
		}
		return ix, nil
	}

	ix.sparse = make(map[E]int, len(variants))
	for ord, v := range variants {
		if _, ok := ix.sparse[v]; ok {
			return nil, errors.Errorf("value %v appears more than once", v)
		}
		ix.sparse[v] = ord
	}
	return ix, nil
}

// Of returns the ordinal for value v. ok is false if v is not in the Index.
func (ix *Index[E]) Of(v E) (ord int, ok bool) {
	if ix.flat != nil {
		slot := int64(v) - ix.low
		if slot < 0 || slot >= int64(len(ix.flat)) || ix.flat[slot] == -1 {
			return 0, false
		}
		return int(ix.flat[slot]), true
	}
	ord, ok = ix.sparse[v]
	return ord, ok
}

// Len reports the number of values in the Index.
func (ix *Index[E]) Len() int {
	return len(ix.variants)
}

// Variants returns the indexed values in declaration order. The slice is
// shared, not copied; callers must not modify it.
func (ix *Index[E]) Variants() []E {
	return ix.variants
}
