// Package tagged provides Value, a container for a single primitive value
// that lets named types attach meaning to a number without the container
// knowing anything about that meaning.
//
// A Value carries no unit or dimension metadata. Meaning lives in the name
// of a type built on top of it:
//
//	type Velocity struct {
//	    tagged.Value[float64] // miles per hour
//	}
//
// Values are built from bare numbers with New and are never converted into
// each other implicitly: a Value[int32] cannot be used where a
// Value[float64] is expected without an explicit Reinterpret.
//
// Operators are package functions whose type constraints act as capability
// gates. Ordering requires cmp.Ordered, remainder requires an integer type,
// and the mixed-type variants require both operand types to be real
// numbers. Using an operator on a type without the capability is a compile
// error, not a runtime one.
package tagged

import (
	"fmt"
)

// Value holds a single value of type T. The zero Value holds T's zero value.
// Values are plain data: copying one produces an independent Value.
type Value[T any] struct {
	value T
}

// New returns a Value holding v.
func New[T any](v T) Value[T] {
	return Value[T]{value: v}
}

// Get returns the stored value.
func (w Value[T]) Get() T { //nolint:ireturn
	return w.value
}

// Set replaces the stored value.
func (w *Value[T]) Set(v T) {
	w.value = v
}

// String returns the stored value's own string form. Nothing is added:
// New(42).String() is "42".
func (w Value[T]) String() string {
	return fmt.Sprint(w.value)
}

// Format implements fmt.Formatter by formatting the stored value with the
// same verb and flags, so fmt.Sprintf("%.2f", tagged.New(3.14159)) is "3.14".
func (w Value[T]) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), w.value)
}
