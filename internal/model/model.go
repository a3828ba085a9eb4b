package model

import (
	"math"

	"github.com/google/uuid"
)

// Unit names the physical unit a scale converts pixel measurements into.
// The engine computes exclusively in millimeters; other display units are
// a presentation concern handled by callers.
type Unit string

const UnitMillimeter Unit = "mm"

// Point represents a location in a 2D coordinate space. Whether that space
// is displayed pixels, calibration pixels, or millimeters is contextual to
// the structure holding the point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Dimension represents a width/height pair in millimeters.
type Dimension struct {
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// Area returns the footprint area in square millimeters.
func (d Dimension) Area() float64 {
	return d.Width * d.Height
}

// ReferenceLine is a user-drawn dimension line pairing a measured pixel
// distance with a known real-world length. Lines are immutable once
// created: PixelLength is computed from the endpoints at construction and
// never recomputed.
type ReferenceLine struct {
	Start       Point   `json:"start"` // displayed-pixel space
	End         Point   `json:"end"`   // displayed-pixel space
	RealLength  float64 `json:"real_length"`  // mm, user supplied
	PixelLength float64 `json:"pixel_length"` // Euclidean distance Start..End
	ImageWidth  float64 `json:"image_width"`  // displayed-pixel space size at creation time
	ImageHeight float64 `json:"image_height"`
}

// NewReferenceLine builds a reference line and fixes its pixel length from
// the endpoints.
func NewReferenceLine(start, end Point, realLength, imageWidth, imageHeight float64) ReferenceLine {
	return ReferenceLine{
		Start:       start,
		End:         end,
		RealLength:  realLength,
		PixelLength: start.DistanceTo(end),
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
	}
}

// Scale returns the line's individual pixels-per-millimeter ratio, or 0
// when the real length is not positive.
func (l ReferenceLine) Scale() float64 {
	if l.RealLength <= 0 {
		return 0
	}
	return l.PixelLength / l.RealLength
}

// HorizontalDominant reports whether the line runs more horizontally than
// vertically. Ties count as vertical.
func (l ReferenceLine) HorizontalDominant() bool {
	return math.Abs(l.End.X-l.Start.X) > math.Abs(l.End.Y-l.Start.Y)
}

// ScaleInfo anchors all pixel/millimeter conversions to a calibration-pixel
// reference frame. It is derived from the current reference line set and
// never edited by hand; a nil *ScaleInfo means the plan is uncalibrated.
type ScaleInfo struct {
	ImageWidth          float64 `json:"image_width"`  // calibration-pixel space
	ImageHeight         float64 `json:"image_height"` // calibration-pixel space
	PixelsPerMillimeter float64 `json:"pixels_per_millimeter"`
	Unit                Unit    `json:"unit"`
}

// Valid reports whether the scale can be used for conversions.
func (s ScaleInfo) Valid() bool {
	return s.PixelsPerMillimeter > 0
}

// Rotation is a fixture placement orientation in degrees.
type Rotation int

const (
	Rotation0  Rotation = 0
	Rotation90 Rotation = 90
)

// Fixture is a template for a placeable rectangular object. Dimensions are
// immutable once the fixture is placed; rotation is tracked separately on
// the placement.
type Fixture struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
	Color  string  `json:"color,omitempty"` // display color, e.g. "#4caf50"
	Icon   string  `json:"icon,omitempty"`
	Group  string  `json:"group,omitempty"` // library grouping, e.g. "Seating"
}

// NewFixture creates a fixture template with a generated ID.
func NewFixture(name string, w, h float64) Fixture {
	return Fixture{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  w,
		Height: h,
	}
}

// Area returns the footprint area in square millimeters.
func (f Fixture) Area() float64 {
	return f.Width * f.Height
}

// Size returns the fixture footprint as a Dimension.
func (f Fixture) Size() Dimension {
	return Dimension{Width: f.Width, Height: f.Height}
}

// PlacedFixture is a fixture positioned on the plan. Position is the
// top-left corner in calibration-pixel space. The placement carries its own
// identity so that multiple placements of one template stay distinct.
type PlacedFixture struct {
	ID       string   `json:"id"`
	Fixture  Fixture  `json:"fixture"`
	Position Point    `json:"position"` // calibration-pixel space
	Rotation Rotation `json:"rotation"` // 0 or 90 degrees
}

// PlacedWidth returns the effective width in mm considering rotation.
func (p PlacedFixture) PlacedWidth() float64 {
	if p.Rotation == Rotation90 {
		return p.Fixture.Height
	}
	return p.Fixture.Width
}

// PlacedHeight returns the effective height in mm considering rotation.
func (p PlacedFixture) PlacedHeight() float64 {
	if p.Rotation == Rotation90 {
		return p.Fixture.Width
	}
	return p.Fixture.Height
}

// PlacementArea defines a rectangular target region for auto-placement,
// expressed in millimeters. Conversion to calibration pixels happens once
// at the placement engine boundary.
type PlacementArea struct {
	X      float64 `json:"x"`      // mm
	Y      float64 `json:"y"`      // mm
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// Inset returns the area shrunk by the margin on all sides. The result may
// have non-positive width or height; callers treat that as "no usable
// space", not as an error.
func (a PlacementArea) Inset(margin float64) PlacementArea {
	return PlacementArea{
		X:      a.X + margin,
		Y:      a.Y + margin,
		Width:  a.Width - 2*margin,
		Height: a.Height - 2*margin,
	}
}

// ValidationResult is the advisory outcome of checking the reference line
// set for internal consistency. It never blocks calibration: an average
// scale is always produced regardless of the validation verdict.
type ValidationResult struct {
	IsValid          bool     `json:"is_valid"`
	InconsistentLine int      `json:"inconsistent_line"` // index into the line set, -1 when none flagged
	MismatchPercent  *float64 `json:"mismatch_percent,omitempty"`
	Message          string   `json:"message,omitempty"`
}

// OKValidation returns the result used when there is nothing to compare.
func OKValidation() ValidationResult {
	return ValidationResult{IsValid: true, InconsistentLine: -1}
}
