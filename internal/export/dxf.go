package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/planfit/planfit/internal/model"
	"github.com/planfit/planfit/internal/transform"
)

// ExportDXF writes the plan's placed fixtures as a DXF drawing. The floor
// outline goes on a FLOOR layer and each fixture is a closed LWPOLYLINE
// rectangle on a FIXTURES layer. All coordinates are millimeters in the
// plan's calibrated frame, so the drawing can be overlaid on other CAD data.
func ExportDXF(path string, plan model.Plan) error {
	if plan.Scale == nil || !plan.Scale.Valid() {
		return fmt.Errorf("plan %q is not calibrated", plan.Name)
	}
	if len(plan.Placed) == 0 {
		return fmt.Errorf("no placed fixtures to export")
	}

	scale := *plan.Scale
	drawing := dxf.NewDrawing()

	if _, err := drawing.AddLayer("FLOOR", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add FLOOR layer: %w", err)
	}
	floorW := transform.PixelsToMillimeters(scale.ImageWidth, scale)
	floorH := transform.PixelsToMillimeters(scale.ImageHeight, scale)
	if _, err := drawing.LwPolyline(true,
		[]float64{0, 0, 0},
		[]float64{floorW, 0, 0},
		[]float64{floorW, floorH, 0},
		[]float64{0, floorH, 0},
	); err != nil {
		return fmt.Errorf("failed to draw floor outline: %w", err)
	}

	if _, err := drawing.AddLayer("FIXTURES", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add FIXTURES layer: %w", err)
	}
	for _, pf := range plan.Placed {
		x := transform.PixelsToMillimeters(pf.Position.X, scale)
		y := transform.PixelsToMillimeters(pf.Position.Y, scale)
		w := pf.PlacedWidth()
		h := pf.PlacedHeight()

		if _, err := drawing.LwPolyline(true,
			[]float64{x, y, 0},
			[]float64{x + w, y, 0},
			[]float64{x + w, y + h, 0},
			[]float64{x, y + h, 0},
		); err != nil {
			return fmt.Errorf("failed to draw fixture %q: %w", pf.Fixture.Name, err)
		}
	}

	return drawing.SaveAs(path)
}
