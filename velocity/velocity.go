// Package velocity is a speed type built on tagged.Value. The stored value is
// always miles per hour; kilometers per hour and meters per second are named
// views over it.
//
//	var v velocity.Velocity[float64]
//	v.SetMPH(10)
//	v.KPH() // 16.0934
package velocity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-tagged/numeric"
	"github.com/amp-labs/amp-tagged/tagged"
)

const (
	// KilometersPerMile converts miles per hour to kilometers per hour.
	KilometersPerMile = 1.60934

	// MPHPerMPS converts meters per second to miles per hour.
	MPHPerMPS = 2.2369362921
)

// ErrUnknownUnit is returned when a unit name is not recognized.
var ErrUnknownUnit = errors.New("unknown speed unit")

// Velocity is a speed stored in miles per hour.
type Velocity[T numeric.Float] struct {
	tagged.Value[T]
}

// Unit names one of the scales a Velocity can be read and written in. Only
// the declared constants are valid; In and SetIn panic on anything else.
type Unit int

const (
	MPH Unit = iota
	KPH
	MPS
)

// Units lists every Unit in declaration order.
var Units = []Unit{MPH, KPH, MPS} //nolint:gochecknoglobals

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool {
	return u >= MPH && u <= MPS
}

func (u Unit) String() string {
	switch u {
	case MPH:
		return "mph"
	case KPH:
		return "kph"
	case MPS:
		return "mps"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit returns the Unit named by s, ignoring case. "km/h" and "m/s"
// are accepted as well.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mph", "mi/h":
		return MPH, nil
	case "kph", "km/h", "kmh":
		return KPH, nil
	case "mps", "m/s":
		return MPS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// New returns a Velocity of mph miles per hour.
func New[T numeric.Float](mph T) Velocity[T] {
	return Velocity[T]{Value: tagged.New(mph)}
}

// From returns a Velocity of v given in unit u. It panics if u is not valid.
func From[T numeric.Float](v T, u Unit) Velocity[T] {
	var out Velocity[T]

	out.SetIn(u, v)

	return out
}

func kph[T numeric.Float]() tagged.Scale[T] {
	return tagged.Times(T(KilometersPerMile))
}

func mps[T numeric.Float]() tagged.Scale[T] {
	return tagged.Per(T(MPHPerMPS))
}

// MPH returns the speed in miles per hour.
func (v Velocity[T]) MPH() T { //nolint:ireturn
	return v.Get()
}

// SetMPH sets the speed in miles per hour.
func (v *Velocity[T]) SetMPH(mph T) {
	v.Set(mph)
}

// KPH returns the speed in kilometers per hour.
func (v Velocity[T]) KPH() T { //nolint:ireturn
	return kph[T]().Read(v.Value)
}

// SetKPH sets the speed in kilometers per hour.
func (v *Velocity[T]) SetKPH(k T) {
	kph[T]().Write(&v.Value, k)
}

// MPS returns the speed in meters per second.
func (v Velocity[T]) MPS() T { //nolint:ireturn
	return mps[T]().Read(v.Value)
}

// SetMPS sets the speed in meters per second.
func (v *Velocity[T]) SetMPS(m T) {
	mps[T]().Write(&v.Value, m)
}

// In returns the speed in unit u. It panics with an error wrapping
// ErrUnknownUnit if u is not valid.
func (v Velocity[T]) In(u Unit) T { //nolint:ireturn
	switch u {
	case MPH:
		return v.MPH()
	case KPH:
		return v.KPH()
	case MPS:
		return v.MPS()
	default:
		panic(fmt.Errorf("%w: %v", ErrUnknownUnit, u))
	}
}

// SetIn sets the speed from a value given in unit u. It panics with an error
// wrapping ErrUnknownUnit if u is not valid.
func (v *Velocity[T]) SetIn(u Unit, value T) {
	switch u {
	case MPH:
		v.SetMPH(value)
	case KPH:
		v.SetKPH(value)
	case MPS:
		v.SetMPS(value)
	default:
		panic(fmt.Errorf("%w: %v", ErrUnknownUnit, u))
	}
}

// Add returns the sum of two speeds.
func Add[T numeric.Float](a, b Velocity[T]) Velocity[T] {
	return Velocity[T]{Value: tagged.Add(a.Value, b.Value)}
}

// Sum returns the sum of all speeds, or zero for none.
func Sum[T numeric.Float](speeds ...Velocity[T]) Velocity[T] {
	var total Velocity[T]

	for _, s := range speeds {
		total = Add(total, s)
	}

	return total
}
