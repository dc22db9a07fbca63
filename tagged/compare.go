package tagged

import "cmp"

// Equal reports whether a and b hold equal values.
func Equal[T comparable](a, b Value[T]) bool {
	return a.value == b.value
}

// NotEqual reports whether a and b hold different values.
func NotEqual[T comparable](a, b Value[T]) bool {
	return a.value != b.value
}

// Less reports whether a holds a smaller value than b.
func Less[T cmp.Ordered](a, b Value[T]) bool {
	return a.value < b.value
}

// Greater reports whether a holds a larger value than b.
func Greater[T cmp.Ordered](a, b Value[T]) bool {
	return a.value > b.value
}

// LessEqual reports whether a holds a value no larger than b.
func LessEqual[T cmp.Ordered](a, b Value[T]) bool {
	return a.value <= b.value
}

// GreaterEqual reports whether a holds a value no smaller than b.
func GreaterEqual[T cmp.Ordered](a, b Value[T]) bool {
	return a.value >= b.value
}

// Compare returns -1, 0 or +1 following cmp.Compare, which orders NaN
// before every other float.
func Compare[T cmp.Ordered](a, b Value[T]) int {
	return cmp.Compare(a.value, b.value)
}

// Min returns whichever of a and b holds the smaller value.
func Min[T cmp.Ordered](a, b Value[T]) Value[T] {
	return Value[T]{value: min(a.value, b.value)}
}

// Max returns whichever of a and b holds the larger value.
func Max[T cmp.Ordered](a, b Value[T]) Value[T] {
	return Value[T]{value: max(a.value, b.value)}
}
