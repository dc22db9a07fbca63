package numeric

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrParse is returned when text cannot be parsed as the requested type.
var ErrParse = errors.New("cannot parse number")

// Cast converts a value from one real type to another using Go's conversion
// rules. Narrowing conversions truncate and float to integer conversions
// drop the fraction; nothing is reported.
//
// Example:
//
//	numeric.Cast[int32](3.7)      // 3
//	numeric.Cast[uint8](int(300)) // 44
func Cast[U, T Real](value T) U { //nolint:ireturn
	return U(value)
}

// Parse parses base-10 text as a value of type T. The text must fit T's
// width; "300" is an error for uint8.
func Parse[T Real](text string) (T, error) { //nolint:ireturn
	return ParseAny[T](text)
}

// ParseAny is Parse for an unconstrained T. It fails with ErrNotReal when
// T's underlying kind is not an integer or floating-point kind.
func ParseAny[T any](text string) (T, error) { //nolint:ireturn
	var out T

	dst := reflect.ValueOf(&out).Elem()
	kind := dst.Kind()

	switch {
	case isSigned(kind):
		v, err := strconv.ParseInt(text, 10, Width(kind))
		if err != nil {
			return out, fmt.Errorf("%w %q as %s: %w", ErrParse, text, kind, err)
		}

		dst.SetInt(v)
	case isUnsigned(kind):
		v, err := strconv.ParseUint(text, 10, Width(kind))
		if err != nil {
			return out, fmt.Errorf("%w %q as %s: %w", ErrParse, text, kind, err)
		}

		dst.SetUint(v)
	case isFloat(kind):
		v, err := strconv.ParseFloat(text, Width(kind))
		if err != nil {
			return out, fmt.Errorf("%w %q as %s: %w", ErrParse, text, kind, err)
		}

		dst.SetFloat(v)
	default:
		return out, fmt.Errorf("%w: cannot parse into %s", ErrNotReal, kind)
	}

	return out, nil
}
