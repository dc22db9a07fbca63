package tagged

import "github.com/amp-labs/amp-tagged/numeric"

// Reinterpret converts the stored value to U using Go's conversion rules and
// returns it as a new Value. This is the only way to turn a Value of one type
// into a Value of another. Precision loss is silent, as with any conversion:
//
//	tagged.Reinterpret[int32](tagged.New(3.7)).Get() // 3
func Reinterpret[U, T numeric.Real](w Value[T]) Value[U] {
	return Value[U]{value: numeric.Cast[U](w.value)}
}

// ReinterpretComplex is Reinterpret for complex values.
func ReinterpretComplex[U, T numeric.Complex](w Value[T]) Value[U] {
	return Value[U]{value: U(w.value)}
}
