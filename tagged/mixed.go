package tagged

import "github.com/amp-labs/amp-tagged/numeric"

// EqualMixed reports whether a and b are equal once both are converted to
// their promoted type (see numeric.Promote). int64(1<<53+1) therefore equals
// float64(1<<53), and int32(-1) equals uint32(math.MaxUint32). NaN equals
// nothing.
func EqualMixed[A, B numeric.Real](a Value[A], b Value[B]) bool {
	c, ok := numeric.Compare(a.value, b.value)

	return ok && c == 0
}

// NotEqualMixed is the negation of EqualMixed.
func NotEqualMixed[A, B numeric.Real](a Value[A], b Value[B]) bool {
	return !EqualMixed(a, b)
}

// LessMixed reports whether a is less than b in their promoted type.
func LessMixed[A, B numeric.Real](a Value[A], b Value[B]) bool {
	c, ok := numeric.Compare(a.value, b.value)

	return ok && c < 0
}

// GreaterMixed reports whether a is greater than b in their promoted type.
func GreaterMixed[A, B numeric.Real](a Value[A], b Value[B]) bool {
	c, ok := numeric.Compare(a.value, b.value)

	return ok && c > 0
}

// LessEqualMixed reports whether a is less than or equal to b in their
// promoted type.
func LessEqualMixed[A, B numeric.Real](a Value[A], b Value[B]) bool {
	c, ok := numeric.Compare(a.value, b.value)

	return ok && c <= 0
}

// GreaterEqualMixed reports whether a is greater than or equal to b in their
// promoted type.
func GreaterEqualMixed[A, B numeric.Real](a Value[A], b Value[B]) bool {
	c, ok := numeric.Compare(a.value, b.value)

	return ok && c >= 0
}

// CompareMixed compares a and b in their promoted type. The boolean is false
// when either holds NaN.
func CompareMixed[A, B numeric.Real](a Value[A], b Value[B]) (int, bool) {
	return numeric.Compare(a.value, b.value)
}

// CompareExact compares the numbers held by a and b without converting
// either, so -1 is less than uint32(1) and int64(1<<53+1) is greater than
// float64(1<<53). The boolean is false when either holds NaN.
func CompareExact[A, B numeric.Real](a Value[A], b Value[B]) (int, bool) {
	return numeric.CompareExact(a.value, b.value)
}

// AddMixed returns a + b computed in R, the promoted type of A and B (see
// numeric.Promote). Both operands are converted to R first.
//
//	sum := tagged.AddMixed[float64](tagged.New(int32(2)), tagged.New(0.5)) // 2.5
//
// R must be the promoted type; anything else panics with an error wrapping
// numeric.ErrNotPromoted, because a narrower R would silently truncate.
func AddMixed[R, A, B numeric.Real](a Value[A], b Value[B]) Value[R] {
	x, y := promote[R](a, b)

	return Value[R]{value: x + y}
}

// SubMixed returns a - b computed in the promoted type R.
func SubMixed[R, A, B numeric.Real](a Value[A], b Value[B]) Value[R] {
	x, y := promote[R](a, b)

	return Value[R]{value: x - y}
}

// MulMixed returns a * b computed in the promoted type R.
func MulMixed[R, A, B numeric.Real](a Value[A], b Value[B]) Value[R] {
	x, y := promote[R](a, b)

	return Value[R]{value: x * y}
}

// DivMixed returns a / b computed in the promoted type R.
func DivMixed[R, A, B numeric.Real](a Value[A], b Value[B]) Value[R] {
	x, y := promote[R](a, b)

	return Value[R]{value: x / y}
}

// ModMixed returns a % b computed in the promoted type R. Both operands must
// be integers.
func ModMixed[R, A, B numeric.Integer](a Value[A], b Value[B]) Value[R] {
	x, y := promote[R](a, b)

	return Value[R]{value: x % y}
}

func promote[R, A, B numeric.Real](a Value[A], b Value[B]) (R, R) { //nolint:ireturn
	if err := numeric.Promotes[R, A, B](); err != nil {
		panic(err)
	}

	return numeric.Cast[R](a.value), numeric.Cast[R](b.value)
}
