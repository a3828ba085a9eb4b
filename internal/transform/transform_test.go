package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planfit/planfit/internal/model"
)

func testScale() model.ScaleInfo {
	return model.ScaleInfo{
		ImageWidth:          1000,
		ImageHeight:         800,
		PixelsPerMillimeter: 2.0,
		Unit:                model.UnitMillimeter,
	}
}

func TestRoundTrip(t *testing.T) {
	scale := testScale()

	for _, mm := range []float64{0.5, 1, 25.4, 300, 12345.6} {
		px := MillimetersToPixels(mm, scale)
		back := PixelsToMillimeters(px, scale)
		assert.InDelta(t, mm, back, 1e-9, "round trip should preserve %v mm", mm)
	}
}

func TestConversions(t *testing.T) {
	scale := testScale()

	assert.Equal(t, 200.0, MillimetersToPixels(100, scale))
	assert.Equal(t, 100.0, PixelsToMillimeters(200, scale))
}

func TestConversions_InvalidScaleFailsClosed(t *testing.T) {
	bad := model.ScaleInfo{PixelsPerMillimeter: 0}

	assert.Equal(t, 0.0, MillimetersToPixels(100, bad))
	assert.Equal(t, 0.0, PixelsToMillimeters(100, bad))

	bad.PixelsPerMillimeter = -1
	assert.Equal(t, 0.0, MillimetersToPixels(100, bad))
}

func TestLineLength(t *testing.T) {
	a := model.Point{X: 0, Y: 0}
	b := model.Point{X: 3, Y: 4}

	assert.InDelta(t, 5.0, LineLength(a, b), 1e-9)
	assert.Equal(t, 0.0, LineLength(a, a))
}

func TestCheckFit_ExactFitAtOrigin(t *testing.T) {
	scale := testScale()

	// A fixture sized to exactly fill the calibrated image fits at origin.
	size := model.Dimension{
		Width:  scale.ImageWidth / scale.PixelsPerMillimeter,
		Height: scale.ImageHeight / scale.PixelsPerMillimeter,
	}
	assert.True(t, CheckFit(model.Point{X: 0, Y: 0}, size, scale))

	// One pixel past any edge no longer fits.
	assert.False(t, CheckFit(model.Point{X: 1, Y: 0}, size, scale))
	assert.False(t, CheckFit(model.Point{X: 0, Y: 1}, size, scale))
	assert.False(t, CheckFit(model.Point{X: -1, Y: 0}, size, scale))
	assert.False(t, CheckFit(model.Point{X: 0, Y: -1}, size, scale))
}

func TestCheckFit_Interior(t *testing.T) {
	scale := testScale()

	size := model.Dimension{Width: 100, Height: 100} // 200x200 px
	assert.True(t, CheckFit(model.Point{X: 400, Y: 300}, size, scale))
	assert.True(t, CheckFit(model.Point{X: 800, Y: 600}, size, scale))
	assert.False(t, CheckFit(model.Point{X: 801, Y: 600}, size, scale))
}

func TestCheckFit_InvalidInputFailsClosed(t *testing.T) {
	scale := testScale()

	assert.False(t, CheckFit(model.Point{}, model.Dimension{Width: 0, Height: 100}, scale))
	assert.False(t, CheckFit(model.Point{}, model.Dimension{Width: 100, Height: -5}, scale))
	assert.False(t, CheckFit(model.Point{}, model.Dimension{Width: 100, Height: 100}, model.ScaleInfo{}))
}
