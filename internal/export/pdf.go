// Package export provides functionality for exporting plan layouts to
// various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/planfit/planfit/internal/model"
	"github.com/planfit/planfit/internal/transform"
)

// fixtureColor represents an RGB color for a placed fixture.
type fixtureColor struct {
	R, G, B int
}

// fixtureColors is the fallback palette used when a fixture has no color of
// its own.
var fixtureColors = []fixtureColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	legendHeight = 20.0
)

// ExportPDF generates a PDF document with the plan layout: the calibrated
// floor area rendered to page scale with every placed fixture drawn as a
// colored rectangle, followed by a fixture schedule.
func ExportPDF(path string, plan model.Plan) error {
	if plan.Scale == nil || !plan.Scale.Valid() {
		return fmt.Errorf("plan %q is not calibrated", plan.Name)
	}
	if len(plan.Placed) == 0 {
		return fmt.Errorf("no placed fixtures to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, plan)

	pdf.AddPage()
	renderSchedulePage(pdf, plan)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the floor area and placed fixtures on the current page.
func renderLayoutPage(pdf *fpdf.Fpdf, plan model.Plan) {
	scale := *plan.Scale
	floorW := transform.PixelsToMillimeters(scale.ImageWidth, scale)
	floorH := transform.PixelsToMillimeters(scale.ImageHeight, scale)

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%.0f x %.0f mm)", plan.Name, floorW, floorH)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Fixtures: %d | Placed area: %.0f mm² | Scale: %.3f px/mm",
		len(plan.Placed), plan.TotalPlacedArea(), scale.PixelsPerMillimeter)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Page scale to fit the floor within the drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	pageScale := math.Min(drawWidth/floorW, drawHeight/floorH)

	canvasW := floorW * pageScale
	canvasH := floorH * pageScale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Floor background
	pdf.SetFillColor(245, 245, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placed fixtures
	for i, pf := range plan.Placed {
		col := fixtureColors[i%len(fixtureColors)]
		xMM := transform.PixelsToMillimeters(pf.Position.X, scale)
		yMM := transform.PixelsToMillimeters(pf.Position.Y, scale)
		fx := offsetX + xMM*pageScale
		fy := offsetY + yMM*pageScale
		fw := pf.PlacedWidth() * pageScale
		fh := pf.PlacedHeight() * pageScale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(fx, fy, fw, fh, "FD")

		// Name label only if the rectangle is large enough
		if fw > 15 && fh > 8 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)
			name := pf.Fixture.Name
			nameW := pdf.GetStringWidth(name)
			if nameW < fw-2 {
				pdf.SetXY(fx+(fw-nameW)/2, fy+fh/2-2)
				pdf.CellFormat(nameW, 4, name, "", 0, "C", false, 0, "")
			}
		}
	}

	drawFloorDimensions(pdf, floorW, floorH, offsetX, offsetY, canvasW, canvasH)
}

// drawFloorDimensions adds width and height labels outside the floor rectangle.
func drawFloorDimensions(pdf *fpdf.Fpdf, floorW, floorH, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", floorW)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f mm", floorH)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSchedulePage lists every placed fixture with its position in mm.
func renderSchedulePage(pdf *fpdf.Fpdf, plan model.Plan) {
	scale := *plan.Scale

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Fixture Schedule", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, drawAreaTop)
	headers := []struct {
		label string
		width float64
	}{
		{"Name", 70}, {"Group", 40}, {"Size (mm)", 40}, {"Position (mm)", 50}, {"Rotation", 30},
	}
	for _, h := range headers {
		pdf.CellFormat(h.width, 6, h.label, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	for _, pf := range plan.Placed {
		xMM := transform.PixelsToMillimeters(pf.Position.X, scale)
		yMM := transform.PixelsToMillimeters(pf.Position.Y, scale)

		pdf.SetX(marginLeft)
		pdf.CellFormat(70, 5, pf.Fixture.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 5, pf.Fixture.Group, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 5, fmt.Sprintf("%.0f x %.0f", pf.Fixture.Width, pf.Fixture.Height), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 5, fmt.Sprintf("(%.0f, %.0f)", xMM, yMM), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, fmt.Sprintf("%d\xb0", pf.Rotation), "", 1, "L", false, 0, "")
	}
}
