package notcopy

// Integer covers every builtin type the integer-only operators (%, <<, >>,
// &, |, ^, &^) accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number covers every builtin type the arithmetic operators accept.
type Number interface {
	Integer | ~float32 | ~float64 | ~complex64 | ~complex128
}

// Addable covers every builtin type the += operator accepts.
type Addable interface {
	Number | ~string
}
