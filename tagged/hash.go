package tagged

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"math"
	"reflect"

	"github.com/amp-labs/amp-tagged/hashing"
)

// ErrUnhashable is returned by UpdateHash when T is not a numeric type.
var ErrUnhashable = errors.New("unhashable value")

var _ hashing.Hashable = Value[int]{}

// UpdateHash implements hashing.Hashable. The stored number is written as 8
// little-endian bytes (16 for complex numbers), widened to 64 bits first, so
// equal values of the same type always hash alike. -0 hashes as +0, and
// every NaN hashes as the same canonical NaN.
func (w Value[T]) UpdateHash(h hash.Hash) error {
	rv := reflect.ValueOf(w.value)

	var buf []byte

	switch {
	case rv.CanInt():
		buf = binary.LittleEndian.AppendUint64(buf, uint64(rv.Int())) //nolint:gosec
	case rv.CanUint():
		buf = binary.LittleEndian.AppendUint64(buf, rv.Uint())
	case rv.CanFloat():
		buf = binary.LittleEndian.AppendUint64(buf, floatBits(rv.Float()))
	case rv.CanComplex():
		c := rv.Complex()
		buf = binary.LittleEndian.AppendUint64(buf, floatBits(real(c)))
		buf = binary.LittleEndian.AppendUint64(buf, floatBits(imag(c)))
	default:
		return fmt.Errorf("%w: %T", ErrUnhashable, w.value)
	}

	if _, err := h.Write(buf); err != nil {
		return err
	}

	return nil
}

func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	default:
		return math.Float64bits(f)
	}
}
