// Package notcopy provides a generic wrapper that suppresses implicit
// duplication of the value it holds.
//
// Go copies struct values silently on assignment, argument passing, range
// iteration, and return. For a counter or accumulator that callers are
// supposed to mutate in place, a silent copy means the mutation lands on a
// throwaway duplicate and the original never changes. Value[T] removes that
// failure mode: it carries a vet-checked copy guard, so every implicit
// by-value copy of a Value is reported by the copylocks analyzer in `go vet`.
// Duplication remains available, but only as an explicit Clone call.
//
// # Basic Usage
//
//	hits := notcopy.New(0)
//
//	func record(hits *notcopy.Value[int]) {
//	    notcopy.Add(hits, 1)
//	}
//
//	record(hits)
//	fmt.Println(hits.V) // 1
//
// The contained value is the exported field V; read and write it directly.
// The zero Value holds the zero value of T:
//
//	var total notcopy.Value[float64] // total.V == 0
//
// # Transparency
//
// A Value forwards everything else to the value it holds, and only where T
// itself supports the operation:
//
//   - ==, Equal, Sum: comparison and hashing delegate to T (T comparable)
//   - Less, Compare: ordering delegates to T (T ordered)
//   - Add, Sub, Mul, Div, Mod, Shl, Shr, And, Or, Xor, AndNot: in-place
//     compound mutation (T numeric, integer, or string as appropriate)
//   - At, AtPtr, SetAt, Lookup, Put, Delete: index forwarding (T a slice
//     or map)
//   - fmt verbs and JSON, XML, YAML, and MessagePack encoding produce
//     output byte-identical to the bare value
//
// Non-mutating arithmetic is deliberately not forwarded. Producing a fresh
// value from a wrapped one reintroduces exactly the incidental duplicate the
// wrapper exists to prevent; unwrap explicitly via the V field instead.
//
// # Pointers
//
// Pass a Value around by pointer. The copy guard makes `go vet` reject
// by-value use, including handing a Value directly to variadic APIs such as
// fmt.Println; pass &v there.
package notcopy

// noCopy may be added to structs which must not be copied after first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
type noCopy struct{}

// Lock is a no-op used by the -copylocks checker from `go vet`.
func (*noCopy) Lock() {}

// Unlock is a no-op used by the -copylocks checker from `go vet`.
func (*noCopy) Unlock() {}

// Value holds a single value of type T and withholds Go's implicit by-value
// duplication from it. The contained value is exposed directly as V; no
// accessor indirection is added.
//
// A Value is comparable with == exactly when T is comparable, and the
// comparison delegates to T. Thread-safety is whatever T provides; the
// wrapper adds no synchronization.
type Value[T any] struct {
	noCopy noCopy

	// V is the wrapped value.
	V T
}

// New returns a Value holding v.
func New[T any](v T) *Value[T] {
	return &Value[T]{V: v}
}

// Clone returns a new Value holding a shallow copy of the contained value.
// This is the only sanctioned duplication path; for types with pointer,
// slice, or map fields use CloneWith to get a deep copy.
func (v *Value[T]) Clone() *Value[T] {
	return &Value[T]{V: v.V}
}

// Cloner allows types to provide deep copy logic.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For types containing pointers, slices,
// or maps, ensure these are also copied to achieve true isolation.
//
// For simple value types with no pointers, slices, or maps, Clone can simply
// return the receiver value:
//
//	func (u User) Clone() User { return u }
//
// For types with reference fields, ensure deep copying:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
type Cloner[T any] interface {
	Clone() T
}

// CloneWith returns a new Value holding the deep copy produced by T's own
// Clone implementation.
func CloneWith[T Cloner[T]](v *Value[T]) *Value[T] {
	return &Value[T]{V: v.V.Clone()}
}

// Swap replaces the contained value with next and returns the previous one.
func Swap[T any](v *Value[T], next T) T {
	prev := v.V
	v.V = next
	return prev
}

// Take returns the contained value and resets the Value to T's zero value.
func Take[T any](v *Value[T]) T {
	var zero T
	prev := v.V
	v.V = zero
	return prev
}
