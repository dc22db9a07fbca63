package numeric

import (
	"errors"
	"fmt"
	"math/bits"
	"reflect"
)

var (
	// ErrNotReal is returned when a promotion is requested for a kind that is
	// not an integer or floating-point kind.
	ErrNotReal = errors.New("not a real numeric kind")

	// ErrNotPromoted is returned when a result type is not the promotion of
	// the two operand types.
	ErrNotPromoted = errors.New("result type is not the promoted type")
)

// KindOf returns the underlying kind of T. Named types report the kind of
// their underlying type, so KindOf[time.Duration]() is reflect.Int64.
func KindOf[T any]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

// Promote returns the kind that results from combining a value of kind a
// with a value of kind b in one arithmetic operation.
//
// The rules, applied in order:
//   - identical kinds promote to themselves
//   - a float combined with a float yields the wider float
//   - a float combined with an integer yields the float
//   - integers narrower than 32 bits are promoted to int32
//   - with equal signedness the wider integer wins, and on a width tie the
//     explicitly sized kind (int64, uint64) wins
//   - with mixed signedness the unsigned kind wins unless the signed kind is
//     strictly wider
func Promote(a, b reflect.Kind) (reflect.Kind, error) {
	if !isReal(a) || !isReal(b) {
		return reflect.Invalid, fmt.Errorf("%w: cannot promote %s and %s", ErrNotReal, a, b)
	}

	if a == b {
		return a, nil
	}

	switch {
	case isFloat(a) && isFloat(b):
		return reflect.Float64, nil
	case isFloat(a):
		return a, nil
	case isFloat(b):
		return b, nil
	}

	a, b = widenSmall(a), widenSmall(b)
	if a == b {
		return a, nil
	}

	if isSigned(a) == isSigned(b) {
		if rank(a) >= rank(b) {
			return a, nil
		}

		return b, nil
	}

	signed, unsigned := a, b
	if isSigned(b) {
		signed, unsigned = b, a
	}

	if Width(unsigned) >= Width(signed) {
		return unsigned, nil
	}

	return signed, nil
}

// Promotes checks that R is the promoted type of A and B. It returns nil when
// it is, and an error wrapping ErrNotPromoted (or ErrNotReal) otherwise.
func Promotes[R, A, B any]() error {
	want, err := Promote(KindOf[A](), KindOf[B]())
	if err != nil {
		return err
	}

	if got := KindOf[R](); got != want {
		return fmt.Errorf("%w: %s and %s promote to %s, not %s",
			ErrNotPromoted, KindOf[A](), KindOf[B](), want, got)
	}

	return nil
}

// Width returns the size in bits of a numeric kind, or 0 for anything else.
func Width(kind reflect.Kind) int {
	switch kind { //nolint:exhaustive
	case reflect.Int8, reflect.Uint8:
		return 8
	case reflect.Int16, reflect.Uint16:
		return 16
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 32
	case reflect.Int64, reflect.Uint64, reflect.Float64, reflect.Complex64:
		return 64
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return bits.UintSize
	case reflect.Complex128:
		return 128
	default:
		return 0
	}
}

func rank(kind reflect.Kind) int {
	bonus := 0

	switch kind { //nolint:exhaustive
	case reflect.Int64, reflect.Uint64:
		bonus = 2
	case reflect.Int, reflect.Uint:
		bonus = 1
	}

	return Width(kind)*4 + bonus
}

func widenSmall(kind reflect.Kind) reflect.Kind {
	if Width(kind) < 32 {
		return reflect.Int32
	}

	return kind
}

func isSigned(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsigned(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloat(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}

func isReal(kind reflect.Kind) bool {
	return isSigned(kind) || isUnsigned(kind) || isFloat(kind)
}
