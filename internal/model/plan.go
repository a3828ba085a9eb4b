package model

// Plan ties a floor-plan image's calibration state and placed fixtures
// together for save/load. The image itself is an external asset; the plan
// only records where to find it and the pixel frame it was calibrated in.
type Plan struct {
	Name           string          `json:"name"`
	ImagePath      string          `json:"image_path,omitempty"`
	ReferenceLines []ReferenceLine `json:"reference_lines"`
	Scale          *ScaleInfo      `json:"scale,omitempty"`
	Placed         []PlacedFixture `json:"placed_fixtures"`
}

// NewPlan returns an empty, uncalibrated plan.
func NewPlan() Plan {
	return Plan{
		Name:           "Untitled",
		ReferenceLines: []ReferenceLine{},
		Placed:         []PlacedFixture{},
	}
}

// AddLine appends a reference line. Lines are append/remove only; a line's
// geometry is never edited in place.
func (p *Plan) AddLine(line ReferenceLine) {
	p.ReferenceLines = append(p.ReferenceLines, line)
}

// RemoveLine deletes the line at the given index. Out-of-range indices are
// ignored.
func (p *Plan) RemoveLine(index int) {
	if index < 0 || index >= len(p.ReferenceLines) {
		return
	}
	p.ReferenceLines = append(p.ReferenceLines[:index], p.ReferenceLines[index+1:]...)
}

// RemovePlaced deletes the placed fixture with the given placement ID and
// reports whether anything was removed.
func (p *Plan) RemovePlaced(id string) bool {
	for i, pf := range p.Placed {
		if pf.ID == id {
			p.Placed = append(p.Placed[:i], p.Placed[i+1:]...)
			return true
		}
	}
	return false
}

// TotalPlacedArea returns the combined footprint of all placed fixtures in
// square millimeters.
func (p Plan) TotalPlacedArea() float64 {
	var total float64
	for _, pf := range p.Placed {
		total += pf.PlacedWidth() * pf.PlacedHeight()
	}
	return total
}
