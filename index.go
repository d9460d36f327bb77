package notcopy

// Index forwarding for slice- and map-typed contained values. Lookups and
// stores behave exactly as they would on the bare value: an out-of-range
// slice index panics, a store into a nil map panics.

// At returns the element at index i of the contained slice.
func At[S ~[]E, E any](v *Value[S], i int) E {
	return v.V[i]
}

// AtPtr returns a pointer to the element at index i of the contained slice,
// for in-place mutation.
func AtPtr[S ~[]E, E any](v *Value[S], i int) *E {
	return &v.V[i]
}

// SetAt stores e at index i of the contained slice.
func SetAt[S ~[]E, E any](v *Value[S], i int, e E) {
	v.V[i] = e
}

// Len returns the length of the contained slice.
func Len[S ~[]E, E any](v *Value[S]) int {
	return len(v.V)
}

// Lookup returns the value stored under k in the contained map and whether
// the key was present.
func Lookup[M ~map[K]E, K comparable, E any](v *Value[M], k K) (E, bool) {
	e, ok := v.V[k]
	return e, ok
}

// Put stores e under k in the contained map.
func Put[M ~map[K]E, K comparable, E any](v *Value[M], k K, e E) {
	v.V[k] = e
}

// Delete removes k from the contained map.
func Delete[M ~map[K]E, K comparable, E any](v *Value[M], k K) {
	delete(v.V, k)
}
