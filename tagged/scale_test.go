package tagged_test

import (
	"testing"

	"github.com/amp-labs/amp-tagged/tagged"
	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	t.Parallel()

	grams := tagged.Times(1000.0)
	tons := tagged.Per(1000.0)

	var kilograms tagged.Value[float64]

	grams.Write(&kilograms, 2500)
	assert.InDelta(t, 2.5, kilograms.Get(), 1e-12)
	assert.InDelta(t, 2500, grams.Read(kilograms), 1e-9)
	assert.InDelta(t, 0.0025, tons.Read(kilograms), 1e-12)

	tons.Write(&kilograms, 3)
	assert.InDelta(t, 3000, kilograms.Get(), 1e-9)
	assert.InDelta(t, 3e6, grams.Read(kilograms), 1e-6)
}
