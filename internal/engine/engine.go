// Package engine implements the fixture auto-placement heuristic: a greedy
// largest-first grid search that positions rectangular fixtures inside a
// target region without overlapping existing fixtures or each other.
//
// The engine is deterministic for identical inputs and never fails for
// geometrically infeasible input: fixtures that cannot be placed are
// simply absent from the result.
package engine

import (
	"sort"

	"github.com/planfit/planfit/internal/model"
	"github.com/planfit/planfit/internal/transform"
)

// Grid search step bounds in calibration pixels. The coarse step adapts to
// the fixture width; the fine step is a retry pass at half the coarse step.
const (
	minStepPx     = 10.0
	maxStepPx     = 100.0
	minFineStepPx = 5.0
	// epsilon absorbs floating point error in boundary and overlap tests.
	epsilon = 0.001
)

// Settings holds placement tuning.
type Settings struct {
	// Clearance is the margin in mm subtracted from the placement area on
	// all sides before packing. Fixture-to-fixture clearance is assumed to
	// be pre-baked into fixture dimensions.
	Clearance float64
}

// Engine arranges fixtures inside a placement area. It holds no mutable
// state between calls and is safe to use from multiple goroutines.
type Engine struct {
	Settings Settings
	ids      IDGenerator
}

// New creates an engine with uuid-based placement identities.
func New(settings Settings) *Engine {
	return &Engine{Settings: settings, ids: UUIDGenerator{}}
}

// NewWithIDs creates an engine with a caller-supplied identity generator,
// which makes placement results fully reproducible.
func NewWithIDs(settings Settings, ids IDGenerator) *Engine {
	return &Engine{Settings: settings, ids: ids}
}

// rect is an axis-aligned rectangle in calibration-pixel space.
type rect struct {
	x, y, w, h float64
}

// overlaps reports whether two rectangles overlap; touching edges do not
// count as overlap.
func (r rect) overlaps(o rect) bool {
	return r.x < o.x+o.w-epsilon && r.x+r.w > o.x+epsilon &&
		r.y < o.y+o.h-epsilon && r.y+r.h > o.y+epsilon
}

// orientation is one of the two rotations tried per fixture.
type orientation struct {
	width    float64 // mm
	height   float64 // mm
	rotation model.Rotation
}

// Place arranges as many of the candidate fixtures as fit inside the area,
// avoiding the already-placed fixtures. The area and fixture dimensions are
// in millimeters; existing fixture positions and the returned positions are
// in calibration-pixel space. Candidates that do not fit in either
// orientation are omitted from the result. None of the inputs are mutated.
func (e *Engine) Place(area model.PlacementArea, fixtures []model.Fixture, existing []model.PlacedFixture, scale model.ScaleInfo) []model.PlacedFixture {
	if !scale.Valid() || len(fixtures) == 0 {
		return nil
	}

	usable := area.Inset(e.Settings.Clearance)
	if usable.Width <= 0 || usable.Height <= 0 {
		return nil
	}

	// All collision math happens in calibration pixels: convert the usable
	// region once at entry.
	usablePx := rect{
		x: transform.MillimetersToPixels(usable.X, scale),
		y: transform.MillimetersToPixels(usable.Y, scale),
		w: transform.MillimetersToPixels(usable.Width, scale),
		h: transform.MillimetersToPixels(usable.Height, scale),
	}

	// Seed the occupancy list with every existing fixture's pixel footprint.
	occupied := make([]rect, 0, len(existing))
	for _, pf := range existing {
		occupied = append(occupied, rect{
			x: pf.Position.X,
			y: pf.Position.Y,
			w: transform.MillimetersToPixels(pf.PlacedWidth(), scale),
			h: transform.MillimetersToPixels(pf.PlacedHeight(), scale),
		})
	}

	// Largest footprint first; stable so equal-area candidates keep their
	// caller-supplied order.
	candidates := make([]model.Fixture, len(fixtures))
	copy(candidates, fixtures)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Area() > candidates[j].Area()
	})

	var placed []model.PlacedFixture
	for _, f := range candidates {
		orientations := []orientation{
			{width: f.Width, height: f.Height, rotation: model.Rotation0},
			{width: f.Height, height: f.Width, rotation: model.Rotation90},
		}

		for _, o := range orientations {
			wPx := transform.MillimetersToPixels(o.width, scale)
			hPx := transform.MillimetersToPixels(o.height, scale)
			if wPx > usablePx.w+epsilon || hPx > usablePx.h+epsilon {
				continue
			}

			pos, ok := findSlot(usablePx, wPx, hPx, occupied)
			if !ok {
				continue
			}

			pf := model.PlacedFixture{
				ID:       e.ids.NewID(),
				Fixture:  f,
				Position: pos,
				Rotation: o.rotation,
			}
			placed = append(placed, pf)
			occupied = append(occupied, rect{x: pos.X, y: pos.Y, w: wPx, h: hPx})
			break // first orientation that fits wins
		}
	}

	return placed
}

// findSlot grid-searches the usable region for a free top-left position for
// a wPx x hPx rectangle. A coarse pass runs first with a step adapted to
// the rectangle width; when it finds nothing a finer pass retries at half
// the step before giving up.
func findSlot(usable rect, wPx, hPx float64, occupied []rect) (model.Point, bool) {
	coarse := clamp(wPx/10, minStepPx, maxStepPx)
	if pos, ok := scanGrid(usable, wPx, hPx, occupied, coarse); ok {
		return pos, true
	}
	fine := coarse / 2
	if fine < minFineStepPx {
		fine = minFineStepPx
	}
	if fine < coarse {
		return scanGrid(usable, wPx, hPx, occupied, fine)
	}
	return model.Point{}, false
}

// scanGrid walks candidate positions left to right, wrapping to the next
// row once the current row is exhausted, and returns the first position
// whose rectangle stays inside the usable region and overlaps nothing.
func scanGrid(usable rect, wPx, hPx float64, occupied []rect, step float64) (model.Point, bool) {
	for y := usable.y; y+hPx <= usable.y+usable.h+epsilon; y += step {
		for x := usable.x; x+wPx <= usable.x+usable.w+epsilon; x += step {
			candidate := rect{x: x, y: y, w: wPx, h: hPx}
			if !overlapsAny(candidate, occupied) {
				return model.Point{X: x, Y: y}, true
			}
		}
	}
	return model.Point{}, false
}

func overlapsAny(r rect, occupied []rect) bool {
	for _, o := range occupied {
		if r.overlaps(o) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
