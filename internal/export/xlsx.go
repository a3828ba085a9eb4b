package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/planfit/planfit/internal/model"
	"github.com/planfit/planfit/internal/transform"
)

// scheduleHeader is the first row of the exported placement schedule.
var scheduleHeader = []interface{}{
	"Name", "Group", "Width (mm)", "Height (mm)", "X (mm)", "Y (mm)", "Rotation", "Color",
}

// ExportSchedule writes the plan's placed fixtures to an Excel workbook,
// one row per fixture with its position in millimeters.
func ExportSchedule(path string, plan model.Plan) error {
	if plan.Scale == nil || !plan.Scale.Valid() {
		return fmt.Errorf("plan %q is not calibrated", plan.Name)
	}
	if len(plan.Placed) == 0 {
		return fmt.Errorf("no placed fixtures to export")
	}
	scale := *plan.Scale

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	cell, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return fmt.Errorf("failed to build header cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &scheduleHeader); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, pf := range plan.Placed {
		row := []interface{}{
			pf.Fixture.Name,
			pf.Fixture.Group,
			pf.Fixture.Width,
			pf.Fixture.Height,
			transform.PixelsToMillimeters(pf.Position.X, scale),
			transform.PixelsToMillimeters(pf.Position.Y, scale),
			fmt.Sprintf("%d", pf.Rotation),
			pf.Fixture.Color,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to build cell name for row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %q: %w", pf.Fixture.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	return nil
}
