package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/planfit/planfit/internal/model"
)

// buildTestPlan returns a calibrated plan with two placed fixtures.
// Scale is 2 px/mm so pixel positions translate to half their value in mm.
func buildTestPlan() model.Plan {
	scale := model.ScaleInfo{
		ImageWidth:          2000,
		ImageHeight:         1600,
		PixelsPerMillimeter: 2.0,
		Unit:                model.UnitMillimeter,
	}
	return model.Plan{
		Name:  "Office A",
		Scale: &scale,
		Placed: []model.PlacedFixture{
			{
				ID:       "pf-1",
				Fixture:  model.Fixture{ID: "f1", Name: "Desk", Group: "Workspace", Width: 1400, Height: 700},
				Position: model.Point{X: 100, Y: 100},
				Rotation: model.Rotation0,
			},
			{
				ID:       "pf-2",
				Fixture:  model.Fixture{ID: "f2", Name: "Cabinet", Group: "Storage", Width: 800, Height: 600},
				Position: model.Point{X: 100, Y: 1600},
				Rotation: model.Rotation90,
			},
		},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.pdf")

	if err := ExportPDF(path, buildTestPlan()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_Uncalibrated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.pdf")

	plan := buildTestPlan()
	plan.Scale = nil
	if err := ExportPDF(path, plan); err == nil {
		t.Fatal("expected error for uncalibrated plan, got nil")
	}
}

func TestExportPDF_NoPlacements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.pdf")

	plan := buildTestPlan()
	plan.Placed = nil
	if err := ExportPDF(path, plan); err == nil {
		t.Fatal("expected error for plan with no placements, got nil")
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	if err := ExportLabels(path, buildTestPlan()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportLabels_NoPlacements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	plan := buildTestPlan()
	plan.Placed = nil
	if err := ExportLabels(path, plan); err == nil {
		t.Fatal("expected error for plan with no placements, got nil")
	}
}

func TestExportLabels_ManyFixtures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 35 placements to exercise multi-page label generation
	plan := buildTestPlan()
	plan.Placed = nil
	for i := 0; i < 35; i++ {
		plan.Placed = append(plan.Placed, model.PlacedFixture{
			ID:       "pf-" + string(rune('A'+i%26)),
			Fixture:  model.Fixture{Name: "Chair " + string(rune('A'+i%26)), Width: 500, Height: 500},
			Position: model.Point{X: float64(i * 10), Y: 10},
		})
	}

	if err := ExportLabels(path, plan); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestPlan())

	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}

	// Positions are converted from pixels to mm (2 px/mm)
	if labels[0].FixtureName != "Desk" {
		t.Errorf("expected first label to be 'Desk', got %q", labels[0].FixtureName)
	}
	if labels[0].X != 50 || labels[0].Y != 50 {
		t.Errorf("wrong position: got (%.0f, %.0f), want (50, 50)", labels[0].X, labels[0].Y)
	}
	if labels[0].Rotated {
		t.Error("expected first label not rotated")
	}
	if !labels[1].Rotated {
		t.Error("expected second label to be rotated")
	}
}

func TestCollectLabelInfos_NoScale(t *testing.T) {
	plan := buildTestPlan()
	plan.Scale = nil
	if labels := CollectLabelInfos(plan); labels != nil {
		t.Errorf("expected nil labels for uncalibrated plan, got %d", len(labels))
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{
		FixtureName: "Desk",
		Group:       "Workspace",
		Width:       1400,
		Height:      700,
		Rotated:     true,
		X:           50,
		Y:           100,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.FixtureName != info.FixtureName {
		t.Errorf("name mismatch: got %q, want %q", decoded.FixtureName, info.FixtureName)
	}
	if decoded.Width != info.Width || decoded.Height != info.Height {
		t.Errorf("dimensions mismatch: got %.0fx%.0f, want %.0fx%.0f",
			decoded.Width, decoded.Height, info.Width, info.Height)
	}
	if !decoded.Rotated {
		t.Error("rotated flag mismatch")
	}
}

func TestExportSchedule_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.xlsx")

	if err := ExportSchedule(path, buildTestPlan()); err != nil {
		t.Fatalf("ExportSchedule returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("workbook was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("workbook is empty")
	}
}

func TestExportSchedule_NoPlacements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.xlsx")

	plan := buildTestPlan()
	plan.Placed = nil
	if err := ExportSchedule(path, plan); err == nil {
		t.Fatal("expected error for plan with no placements, got nil")
	}
}

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.dxf")

	if err := ExportDXF(path, buildTestPlan()); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("DXF file is empty")
	}
}

func TestExportDXF_Uncalibrated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.dxf")

	plan := buildTestPlan()
	plan.Scale = nil
	if err := ExportDXF(path, plan); err == nil {
		t.Fatal("expected error for uncalibrated plan, got nil")
	}
}
