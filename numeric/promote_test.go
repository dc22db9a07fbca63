package numeric_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/amp-labs/amp-tagged/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float32

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, reflect.Int32, numeric.KindOf[int32]())
	assert.Equal(t, reflect.Float64, numeric.KindOf[float64]())
	assert.Equal(t, reflect.Int64, numeric.KindOf[time.Duration]())
	assert.Equal(t, reflect.Float32, numeric.KindOf[celsius]())
	assert.Equal(t, reflect.Struct, numeric.KindOf[struct{}]())
}

func TestPromote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     reflect.Kind
		expected reflect.Kind
	}{
		{"same kind", reflect.Int8, reflect.Int8, reflect.Int8},
		{"int and double", reflect.Int32, reflect.Float64, reflect.Float64},
		{"double and int", reflect.Float64, reflect.Int32, reflect.Float64},
		{"float and int64", reflect.Float32, reflect.Int64, reflect.Float32},
		{"float and double", reflect.Float32, reflect.Float64, reflect.Float64},
		{"small signed and unsigned", reflect.Int8, reflect.Uint8, reflect.Int32},
		{"small and int32", reflect.Int16, reflect.Int32, reflect.Int32},
		{"small unsigned and int64", reflect.Uint16, reflect.Int64, reflect.Int64},
		{"wider signed", reflect.Int32, reflect.Int64, reflect.Int64},
		{"wider unsigned", reflect.Uint64, reflect.Uint32, reflect.Uint64},
		{"unsigned same width wins", reflect.Int32, reflect.Uint32, reflect.Uint32},
		{"unsigned wider wins", reflect.Int32, reflect.Uint64, reflect.Uint64},
		{"signed strictly wider wins", reflect.Int64, reflect.Uint32, reflect.Int64},
		{"small unsigned and uint32", reflect.Uint8, reflect.Uint32, reflect.Uint32},
		{"int and int64 tie", reflect.Int, reflect.Int64, reflect.Int64},
		{"uint and uint64 tie", reflect.Uint64, reflect.Uint, reflect.Uint64},
		{"uint and uintptr tie", reflect.Uintptr, reflect.Uint, reflect.Uint},
		{"int and uint64", reflect.Int, reflect.Uint64, reflect.Uint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := numeric.Promote(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			// Promotion is symmetric.
			got, err = numeric.Promote(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPromoteRejectsNonReal(t *testing.T) {
	t.Parallel()

	for _, kind := range []reflect.Kind{reflect.Complex128, reflect.String, reflect.Bool, reflect.Struct} {
		_, err := numeric.Promote(kind, reflect.Int)
		require.ErrorIs(t, err, numeric.ErrNotReal, kind.String())
	}
}

func TestPromotes(t *testing.T) {
	t.Parallel()

	require.NoError(t, numeric.Promotes[float64, int32, float64]())
	require.NoError(t, numeric.Promotes[int32, int8, uint16]())
	require.NoError(t, numeric.Promotes[time.Duration, time.Duration, int64]())
	require.NoError(t, numeric.Promotes[celsius, celsius, int]())

	err := numeric.Promotes[int32, int32, float64]()
	require.ErrorIs(t, err, numeric.ErrNotPromoted)
	assert.Contains(t, err.Error(), "float64")

	require.ErrorIs(t, numeric.Promotes[complex128, complex128, float64](), numeric.ErrNotReal)
}

func TestWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, numeric.Width(reflect.Uint8))
	assert.Equal(t, 16, numeric.Width(reflect.Int16))
	assert.Equal(t, 32, numeric.Width(reflect.Float32))
	assert.Equal(t, 64, numeric.Width(reflect.Int64))
	assert.Equal(t, 128, numeric.Width(reflect.Complex128))
	assert.Equal(t, 0, numeric.Width(reflect.String))
}
