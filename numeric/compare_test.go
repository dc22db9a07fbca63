package numeric_test

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-tagged/numeric"
	"github.com/stretchr/testify/assert"
)

func checkOrdered(t *testing.T, expected int, got int, ordered bool) {
	t.Helper()

	assert.True(t, ordered)
	assert.Equal(t, expected, got)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("int and float", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.Compare(int32(3), 3.5)
		checkOrdered(t, -1, got, ok)

		got, ok = numeric.Compare(4.0, int8(4))
		checkOrdered(t, 0, got, ok)

		got, ok = numeric.Compare(float32(-0.5), int64(-1))
		checkOrdered(t, 1, got, ok)
	})

	t.Run("negative signed promotes to unsigned", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.Compare(int32(-1), uint32(1))
		checkOrdered(t, 1, got, ok)

		got, ok = numeric.Compare(uint64(1), -1)
		checkOrdered(t, -1, got, ok)

		got, ok = numeric.Compare(int32(-1), uint32(math.MaxUint32))
		checkOrdered(t, 0, got, ok)
	})

	t.Run("small integers promote to int32", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.Compare(uint8(0), int16(-7))
		checkOrdered(t, 1, got, ok)

		got, ok = numeric.Compare(uint8(7), int16(7))
		checkOrdered(t, 0, got, ok)
	})

	t.Run("wider signed keeps the sign", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.Compare(int64(-1), uint32(1))
		checkOrdered(t, -1, got, ok)
	})

	t.Run("rounds to float64", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.Compare(int64(1<<53+1), float64(1<<53))
		checkOrdered(t, 0, got, ok)
	})

	t.Run("rounds to float32", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.Compare(int32(1<<24+1), float32(1<<24))
		checkOrdered(t, 0, got, ok)
	})

	t.Run("NaN is unordered", func(t *testing.T) {
		t.Parallel()

		_, ok := numeric.Compare(math.NaN(), 1)
		assert.False(t, ok)

		_, ok = numeric.Compare(float32(1), float32(math.NaN()))
		assert.False(t, ok)
	})
}

func TestCompareExact(t *testing.T) {
	t.Parallel()

	t.Run("int and float", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.CompareExact(int32(3), 3.5)
		checkOrdered(t, -1, got, ok)

		got, ok = numeric.CompareExact(4.0, int8(4))
		checkOrdered(t, 0, got, ok)

		got, ok = numeric.CompareExact(float32(-0.5), int64(-1))
		checkOrdered(t, 1, got, ok)
	})

	t.Run("signed and unsigned", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.CompareExact(-1, uint32(1))
		checkOrdered(t, -1, got, ok)

		got, ok = numeric.CompareExact(uint64(math.MaxUint64), int64(math.MaxInt64))
		checkOrdered(t, 1, got, ok)

		got, ok = numeric.CompareExact(uint8(7), int16(7))
		checkOrdered(t, 0, got, ok)

		got, ok = numeric.CompareExact(uint8(0), int16(-7))
		checkOrdered(t, 1, got, ok)
	})

	t.Run("beyond float precision", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.CompareExact(int64(1<<53+1), float64(1<<53))
		checkOrdered(t, 1, got, ok)

		got, ok = numeric.CompareExact(uint64(1<<63), float64(1<<63))
		checkOrdered(t, 0, got, ok)
	})

	t.Run("infinities", func(t *testing.T) {
		t.Parallel()

		got, ok := numeric.CompareExact(int64(math.MaxInt64), math.Inf(1))
		checkOrdered(t, -1, got, ok)

		got, ok = numeric.CompareExact(math.Inf(-1), int64(math.MinInt64))
		checkOrdered(t, -1, got, ok)
	})

	t.Run("NaN is unordered", func(t *testing.T) {
		t.Parallel()

		_, ok := numeric.CompareExact(math.NaN(), 1)
		assert.False(t, ok)

		_, ok = numeric.CompareExact(float32(1), math.NaN())
		assert.False(t, ok)
	})
}
