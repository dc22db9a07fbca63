package numeric

import (
	"cmp"
	"math"
	"math/big"
	"reflect"
)

// Compare compares two values of possibly different real types after
// converting both to their promoted type (see Promote), the way mixed
// arithmetic does. It returns -1, 0 or +1 and true, or 0 and false when
// either operand is NaN.
//
// Promotion can change a value: int32(-1) promotes to uint32 and compares
// greater than uint32(1), and int64(1<<53+1) rounds to float64(1<<53) and
// compares equal to it. CompareExact compares by mathematical value instead.
func Compare[A, B Real](a A, b B) (int, bool) {
	kind, err := Promote(KindOf[A](), KindOf[B]())
	if err != nil {
		// Unreachable: every Real kind has a promotion.
		panic(err)
	}

	switch {
	case kind == reflect.Float32:
		return compareFloats(float32(a), float32(b))
	case isFloat(kind):
		return compareFloats(float64(a), float64(b))
	case isSigned(kind):
		return cmp.Compare(int64(a), int64(b)), true
	case Width(kind) == 32: //nolint:mnd
		return cmp.Compare(uint32(a), uint32(b)), true
	default:
		return cmp.Compare(uint64(a), uint64(b)), true
	}
}

func compareFloats[F float32 | float64](x, y F) (int, bool) {
	if math.IsNaN(float64(x)) || math.IsNaN(float64(y)) {
		return 0, false
	}

	return cmp.Compare(x, y), true
}

// CompareExact compares two values of possibly different real types by their
// mathematical value. It returns -1, 0 or +1 and true, or 0 and false when
// either operand is NaN.
//
// No operand is converted: -1 is less than uint32(1), and int64(1<<53+1) is
// greater than float64(1<<53).
func CompareExact[A, B Real](a A, b B) (int, bool) {
	return scalarOf(a).compare(scalarOf(b))
}

type class int

const (
	signedClass class = iota
	unsignedClass
	floatClass
)

// scalar holds a real value in the widest representation of its class.
type scalar struct {
	class class
	i     int64
	u     uint64
	f     float64
}

func scalarOf[T Real](v T) scalar {
	kind := KindOf[T]()

	switch {
	case isSigned(kind):
		return scalar{class: signedClass, i: int64(v)}
	case isUnsigned(kind):
		return scalar{class: unsignedClass, u: uint64(v)}
	default:
		return scalar{class: floatClass, f: float64(v)}
	}
}

func (s scalar) isNaN() bool {
	return s.class == floatClass && math.IsNaN(s.f)
}

func (s scalar) toBig() *big.Float {
	switch s.class {
	case signedClass:
		return new(big.Float).SetInt64(s.i)
	case unsignedClass:
		return new(big.Float).SetUint64(s.u)
	default:
		return new(big.Float).SetFloat64(s.f)
	}
}

func (s scalar) compare(other scalar) (int, bool) {
	if s.isNaN() || other.isNaN() {
		return 0, false
	}

	switch {
	case s.class == other.class:
		switch s.class {
		case signedClass:
			return cmp.Compare(s.i, other.i), true
		case unsignedClass:
			return cmp.Compare(s.u, other.u), true
		default:
			return cmp.Compare(s.f, other.f), true
		}
	case s.class == floatClass || other.class == floatClass:
		return s.toBig().Cmp(other.toBig()), true
	case s.class == signedClass:
		if s.i < 0 {
			return -1, true
		}

		return cmp.Compare(uint64(s.i), other.u), true
	default:
		if other.i < 0 {
			return 1, true
		}

		return cmp.Compare(s.u, uint64(other.i)), true
	}
}
