package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_When_ValidStops(t *testing.T) {
	t.Parallel()

	c, err := Build([]string{"#C7D2FE", "#FECACA", "#FEF9C3"}, []float64{0, 50, 100})
	require.NoError(t, err)

	min, max := c.Domain()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 100.0, max)

	assert.Equal(t, "#c7d2fe", c.At(0).Hex())
	assert.Equal(t, "#fecaca", c.At(50).Hex())
	assert.Equal(t, "#fef9c3", c.At(100).Hex())
}

func TestBuild_When_MismatchedCounts(t *testing.T) {
	t.Parallel()

	_, err := Build([]string{"#000000", "#ffffff"}, []float64{0, 50, 100})
	assert.ErrorIs(t, err, ErrStopCountMismatch)
}

func TestBuild_When_TooFewStops(t *testing.T) {
	t.Parallel()

	_, err := Build([]string{"#000000"}, []float64{0})
	assert.ErrorIs(t, err, ErrTooFewStops)
}

func TestBuild_When_DomainDecreases(t *testing.T) {
	t.Parallel()

	_, err := Build([]string{"#000000", "#888888", "#ffffff"}, []float64{0, 60, 50})
	assert.ErrorIs(t, err, ErrDomainNotSorted)
}

func TestBuild_When_BadHex(t *testing.T) {
	t.Parallel()

	_, err := Build([]string{"#000000", "not-a-color"}, []float64{0, 100})
	assert.Error(t, err)
}

func TestAt_When_OutsideDomain(t *testing.T) {
	t.Parallel()

	c := Sunset()
	assert.Equal(t, c.At(0).Hex(), c.At(-25).Hex())
	assert.Equal(t, c.At(100).Hex(), c.At(1e6).Hex())
}

func TestColors_When_SampledTwice(t *testing.T) {
	t.Parallel()

	c := Sunset()
	first := c.Colors(144)
	second := c.Colors(144)
	assert.Equal(t, first, second)
}

func TestColors_SpansDomain(t *testing.T) {
	t.Parallel()

	c := Sunset()
	colors := c.Colors(144)
	require.Len(t, colors, 144)
	assert.Equal(t, c.At(0), colors[0])
	assert.Equal(t, c.At(100), colors[143])
}

func TestColors_When_DegenerateCounts(t *testing.T) {
	t.Parallel()

	c := Sunset()
	assert.Nil(t, c.Colors(0))
	assert.Nil(t, c.Colors(-3))

	one := c.Colors(1)
	require.Len(t, one, 1)
	assert.Equal(t, c.At(0), one[0])
}

func TestPresets_AlwaysBuild(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Sunset()
		Gold()
		Fallback()
	})
}

func TestFallback_IsMagmaShaped(t *testing.T) {
	t.Parallel()

	c := Fallback()
	assert.Equal(t, "#000004", c.At(0).Hex())
	assert.Equal(t, "#fcfdbf", c.At(100).Hex())
}
