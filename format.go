package notcopy

import (
	"fmt"
	"strconv"
)

var _ fmt.Formatter = (*Value[int])(nil)

// Format implements fmt.Formatter by replaying the caller's exact directive
// against the contained value, so formatting a *Value produces output
// byte-identical to formatting the bare value with the same verb, flags,
// width, and precision.
func (v *Value[T]) Format(f fmt.State, verb rune) {
	directive := make([]byte, 0, 8)
	directive = append(directive, '%')
	for _, flag := range []int{'-', '+', '#', ' ', '0'} {
		if f.Flag(flag) {
			directive = append(directive, byte(flag))
		}
	}
	if w, ok := f.Width(); ok {
		directive = strconv.AppendInt(directive, int64(w), 10)
	}
	if p, ok := f.Precision(); ok {
		directive = append(directive, '.')
		directive = strconv.AppendInt(directive, int64(p), 10)
	}
	directive = append(directive, string(verb)...)
	fmt.Fprintf(f, string(directive), v.V)
}

// String returns the contained value's default textual form.
func (v *Value[T]) String() string {
	return fmt.Sprint(v.V)
}
