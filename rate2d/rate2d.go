// Package rate2d is a two-dimensional rate built on tagged.Value. The stored
// vector is in pixels per second; pixels per frame is a named view at a fixed
// frame rate.
//
// The wrapped type is a vector, not a number, so the arithmetic operators of
// package tagged do not apply to it. Rate only needs its vectors to scale.
package rate2d

import (
	"fmt"

	"github.com/amp-labs/amp-tagged/tagged"
)

// FramesPerSecond is the frame rate used to convert between per-second and
// per-frame rates.
const FramesPerSecond = 60

// Planar is satisfied by vector types that can be multiplied by a scalar.
type Planar[T any] interface {
	Scale(f float32) T
}

// Vector2 is a plain two-component vector.
type Vector2 struct {
	X float32
	Y float32
}

var _ Planar[Vector2] = Vector2{}

// Scale returns the vector multiplied by f.
func (v Vector2) Scale(f float32) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Rate is a vector rate stored in pixels per second.
type Rate[T Planar[T]] struct {
	tagged.Value[T]
}

// New returns a Rate of pps pixels per second.
func New[T Planar[T]](pps T) Rate[T] {
	return Rate[T]{Value: tagged.New(pps)}
}

// PixelsPerSecond returns the rate in pixels per second.
func (r Rate[T]) PixelsPerSecond() T { //nolint:ireturn
	return r.Get()
}

// SetPixelsPerSecond sets the rate in pixels per second.
func (r *Rate[T]) SetPixelsPerSecond(pps T) {
	r.Set(pps)
}

// PixelsPerFrame returns the rate in pixels per frame.
func (r Rate[T]) PixelsPerFrame() T { //nolint:ireturn
	return r.Get().Scale(1.0 / FramesPerSecond)
}

// SetPixelsPerFrame sets the rate from pixels per frame.
func (r *Rate[T]) SetPixelsPerFrame(ppf T) {
	r.Set(ppf.Scale(FramesPerSecond))
}
