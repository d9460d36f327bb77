package notcopy

// Compound mutation operators. Each mutates the contained value in place and
// exists only for types that support the corresponding Go operator; applying
// one to an unsupported T is a compile error, not a runtime check. Division
// and remainder by zero panic exactly as they would on a bare value.

// Add adds rhs into the contained value (v.V += rhs).
func Add[T Addable](v *Value[T], rhs T) {
	v.V += rhs
}

// Sub subtracts rhs from the contained value (v.V -= rhs).
func Sub[T Number](v *Value[T], rhs T) {
	v.V -= rhs
}

// Mul multiplies the contained value by rhs (v.V *= rhs).
func Mul[T Number](v *Value[T], rhs T) {
	v.V *= rhs
}

// Div divides the contained value by rhs (v.V /= rhs).
func Div[T Number](v *Value[T], rhs T) {
	v.V /= rhs
}

// Mod reduces the contained value modulo rhs (v.V %= rhs).
func Mod[T Integer](v *Value[T], rhs T) {
	v.V %= rhs
}

// Shl shifts the contained value left by n bits (v.V <<= n).
func Shl[T Integer](v *Value[T], n uint) {
	v.V <<= n
}

// Shr shifts the contained value right by n bits (v.V >>= n).
func Shr[T Integer](v *Value[T], n uint) {
	v.V >>= n
}

// And applies bitwise AND with rhs to the contained value (v.V &= rhs).
func And[T Integer](v *Value[T], rhs T) {
	v.V &= rhs
}

// Or applies bitwise OR with rhs to the contained value (v.V |= rhs).
func Or[T Integer](v *Value[T], rhs T) {
	v.V |= rhs
}

// Xor applies bitwise XOR with rhs to the contained value (v.V ^= rhs).
func Xor[T Integer](v *Value[T], rhs T) {
	v.V ^= rhs
}

// AndNot clears in the contained value every bit set in rhs (v.V &^= rhs).
func AndNot[T Integer](v *Value[T], rhs T) {
	v.V &^= rhs
}
