package notcopy

import (
	"cmp"
	"hash/maphash"
)

// Equal reports whether two wrapped values are equal, delegating to T's ==.
// Two Values also compare directly with == when T is comparable; the guard
// field is zero-size and never affects the result.
func Equal[T comparable](a, b *Value[T]) bool {
	return a.V == b.V
}

// Less reports whether a's contained value orders before b's, with T's own
// tie-break rules.
func Less[T cmp.Ordered](a, b *Value[T]) bool {
	return a.V < b.V
}

// Compare returns -1, 0, or +1 per cmp.Compare on the contained values.
func Compare[T cmp.Ordered](a, b *Value[T]) int {
	return cmp.Compare(a.V, b.V)
}

// Sum returns the maphash of the contained value under seed. The result is
// identical to maphash.Comparable(seed, v.V), so a wrapped value and its
// bare value hash alike and stay interchangeable as map keys when consumers
// unwrap consistently.
func Sum[T comparable](seed maphash.Seed, v *Value[T]) uint64 {
	return maphash.Comparable(seed, v.V)
}
