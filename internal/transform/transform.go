// Package transform provides the pure pixel/millimeter conversions that
// anchor all plan computations to a calibration scale. Every function is
// stateless and side-effect free; invalid input fails closed rather than
// panicking.
package transform

import (
	"github.com/planfit/planfit/internal/model"
)

// PixelsToMillimeters converts a pixel length to millimeters using the
// given scale. Returns 0 for an unusable scale.
func PixelsToMillimeters(pixels float64, scale model.ScaleInfo) float64 {
	if !scale.Valid() {
		return 0
	}
	return pixels / scale.PixelsPerMillimeter
}

// MillimetersToPixels converts a millimeter length to calibration pixels
// using the given scale. Returns 0 for an unusable scale.
func MillimetersToPixels(mm float64, scale model.ScaleInfo) float64 {
	if !scale.Valid() {
		return 0
	}
	return mm * scale.PixelsPerMillimeter
}

// LineLength returns the Euclidean distance between two points.
func LineLength(a, b model.Point) float64 {
	return a.DistanceTo(b)
}

// CheckFit reports whether a fixture of the given millimeter size, placed
// with its top-left corner at position (calibration pixels), lies fully
// inside the calibrated image bounds.
func CheckFit(position model.Point, size model.Dimension, scale model.ScaleInfo) bool {
	if !scale.Valid() || size.Width <= 0 || size.Height <= 0 {
		return false
	}
	widthPx := MillimetersToPixels(size.Width, scale)
	heightPx := MillimetersToPixels(size.Height, scale)
	return position.X >= 0 && position.Y >= 0 &&
		position.X+widthPx <= scale.ImageWidth &&
		position.Y+heightPx <= scale.ImageHeight
}
