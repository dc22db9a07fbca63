package tagged

import "github.com/amp-labs/amp-tagged/numeric"

// Add returns a + b. Overflow, NaN and infinities behave exactly as they do
// for T.
func Add[T numeric.Number](a, b Value[T]) Value[T] {
	return Value[T]{value: a.value + b.value}
}

// Sub returns a - b.
func Sub[T numeric.Number](a, b Value[T]) Value[T] {
	return Value[T]{value: a.value - b.value}
}

// Mul returns a * b.
func Mul[T numeric.Number](a, b Value[T]) Value[T] {
	return Value[T]{value: a.value * b.value}
}

// Div returns a / b. Integer division by zero panics, as it does for T.
func Div[T numeric.Number](a, b Value[T]) Value[T] {
	return Value[T]{value: a.value / b.value}
}

// Mod returns a % b.
func Mod[T numeric.Integer](a, b Value[T]) Value[T] {
	return Value[T]{value: a.value % b.value}
}
