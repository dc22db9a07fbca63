// Package numeric provides the numeric type constraints, the promotion table
// and the mixed-type comparison used by tagged values.
//
// Go performs no implicit conversion between numeric types, so every mixed
// operation has to decide on a common type explicitly. Promote mirrors the
// usual arithmetic conversions of C-family languages, mapped onto Go's sized
// types:
//
//	numeric.Promote(reflect.Int32, reflect.Float64)  // float64
//	numeric.Promote(reflect.Int8, reflect.Uint8)     // int32
//	numeric.Promote(reflect.Int64, reflect.Uint32)   // int64
//	numeric.Promote(reflect.Int32, reflect.Uint32)   // uint32
package numeric

import "golang.org/x/exp/constraints"

// Signed is any signed integer type, including named types.
type Signed interface {
	constraints.Signed
}

// Unsigned is any unsigned integer type, including named types.
type Unsigned interface {
	constraints.Unsigned
}

// Integer is any integer type. Integers are the only types with a remainder
// operator.
type Integer interface {
	constraints.Integer
}

// Float is any floating-point type.
type Float interface {
	constraints.Float
}

// Complex is any complex type. Complex numbers support arithmetic and
// equality but have no ordering and no conversion to or from real types.
type Complex interface {
	constraints.Complex
}

// Real is any integer or floating-point type. Values of any two Real types
// can be converted into each other, which is what mixed operations need.
type Real interface {
	Integer | Float
}

// Number is any type supporting + - * and /.
type Number interface {
	Real | Complex
}
