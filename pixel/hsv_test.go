package pixel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/microstrip/pixel"
)

func TestHSVPrimaries(t *testing.T) {
	assert.Equal(t, pixel.New888(255, 0, 0), pixel.HSV(0, 255, 255))
	assert.Equal(t, pixel.New888(0, 255, 0), pixel.HSV(510, 255, 255))
	assert.Equal(t, pixel.New888(0, 0, 255), pixel.HSV(1020, 255, 255))
}

func TestHSVWraps(t *testing.T) {
	assert.Equal(t, pixel.HSV(10, 255, 255), pixel.HSV(10+pixel.HueMax, 255, 255))
	assert.Equal(t, pixel.HSV(pixel.HueMax-10, 255, 255), pixel.HSV(-10, 255, 255))
}

func TestHSVDesaturatesToGray(t *testing.T) {
	for h := 0; h < pixel.HueMax; h += 101 {
		r, g, b := pixel.HSV(h, 0, 200).RGB()
		require.Equal(t, r, g)
		require.Equal(t, g, b)
		require.Equal(t, uint8(200), r)
	}
}

func TestHSVContinuity(t *testing.T) {
	// Adjacent hues must never jump by more than one quantization step
	// per channel.
	pr, pg, pb := pixel.HSV(0, 255, 255).RGB()
	for h := 1; h <= pixel.HueMax; h++ {
		r, g, b := pixel.HSV(h, 255, 255).RGB()
		require.LessOrEqual(t, absDiff(r, pr), 2, "hue %d", h)
		require.LessOrEqual(t, absDiff(g, pg), 2, "hue %d", h)
		require.LessOrEqual(t, absDiff(b, pb), 2, "hue %d", h)
		pr, pg, pb = r, g, b
	}
}

func TestHSVValueScales(t *testing.T) {
	r, g, b := pixel.HSV(300, 255, 0).RGB()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestWheelEndpointsMeet(t *testing.T) {
	assert.Equal(t, pixel.Wheel(0), pixel.Wheel(255))
	assert.Equal(t, pixel.New888(255, 0, 0), pixel.Wheel(0))
}

func TestKelvinWarmToCool(t *testing.T) {
	// Warm temperatures are red-heavy, cool ones blue-heavy.
	r, _, b := pixel.Kelvin(1800).RGB()
	assert.Greater(t, r, b)
	r, _, b = pixel.Kelvin(9500).RGB()
	assert.Greater(t, b, r)
}

func TestKelvinClampsAndInterpolates(t *testing.T) {
	assert.Equal(t, pixel.Kelvin(1000), pixel.Kelvin(200))
	assert.Equal(t, pixel.Kelvin(10000), pixel.Kelvin(40000))

	// A midpoint sits between its table neighbors.
	_, g1, _ := pixel.Kelvin(2000).RGB()
	_, g2, _ := pixel.Kelvin(2500).RGB()
	_, gm, _ := pixel.Kelvin(2250).RGB()
	assert.True(t, between(gm, g1, g2), "g=%d not within [%d,%d]", gm, g1, g2)
}
