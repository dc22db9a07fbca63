package tagged

import "github.com/amp-labs/amp-tagged/numeric"

// Scale is one named view of a stored value: it reads the value in some
// other scale and writes a value given in that scale back into the stored
// one. Extension types declare one Scale per accessor pair and keep the
// stored value in a single base scale.
//
//	var kph = tagged.Times(1.60934) // stored in mph
//
//	func (v Velocity) KPH() float64     { return kph.Read(v.Value) }
//	func (v *Velocity) SetKPH(k float64) { kph.Write(&v.Value, k) }
type Scale[T numeric.Float] struct {
	factor  T
	inverse bool
}

// Times returns a Scale whose reading is the stored value multiplied by
// factor.
func Times[T numeric.Float](factor T) Scale[T] {
	return Scale[T]{factor: factor}
}

// Per returns a Scale whose reading is the stored value divided by divisor.
func Per[T numeric.Float](divisor T) Scale[T] {
	return Scale[T]{factor: divisor, inverse: true}
}

// Read returns the stored value of w in this scale.
func (s Scale[T]) Read(w Value[T]) T { //nolint:ireturn
	if s.inverse {
		return w.value / s.factor
	}

	return w.value * s.factor
}

// Write stores v, given in this scale, into w in the base scale.
func (s Scale[T]) Write(w *Value[T], v T) {
	if s.inverse {
		w.value = v * s.factor
	} else {
		w.value = v / s.factor
	}
}
