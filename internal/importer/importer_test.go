package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Width,Height,Qty\nDesk,1400,700,2\nChair,500,500,4\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Width;Height;Qty\nDesk;1400;700;2\nChair;500;500;4\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tWidth\tHeight\tQty\nDesk\t1400\t700\t2\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Name", "Width", "Height", "Quantity", "Group", "Color"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
	if mapping.Quantity != 3 || mapping.Group != 4 || mapping.Color != 5 {
		t.Errorf("unexpected optional mapping: %+v", mapping)
	}
}

func TestDetectColumns_Aliases(t *testing.T) {
	row := []string{"Item", "W", "H", "Pcs", "Category"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected aliased header to be detected")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 || mapping.Group != 4 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"Desk", "1400", "700", "1"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("numeric row should not be detected as header")
	}
	// Positional fallback
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTemp(t, "fixtures.csv",
		"Name,Width,Height,Quantity,Group\nDesk,1400,700,1,Workspace\nChair,500,500,2,Seating\n")

	result := ImportCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Fixtures) != 3 {
		t.Fatalf("expected 3 fixtures (quantity expanded), got %d", len(result.Fixtures))
	}
	if result.Fixtures[0].Name != "Desk" || result.Fixtures[0].Width != 1400 {
		t.Errorf("unexpected first fixture: %+v", result.Fixtures[0])
	}
	if result.Fixtures[1].Group != "Seating" || result.Fixtures[2].Group != "Seating" {
		t.Error("group should carry over into expanded copies")
	}
	if result.Fixtures[1].ID == result.Fixtures[2].ID {
		t.Error("expanded copies must have distinct ids")
	}
}

func TestImportCSV_NoQuantityDefaultsToOne(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Name,Width,Height\nSofa,2000,900\n"), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(result.Fixtures))
	}
}

func TestImportCSV_InvalidRowsReported(t *testing.T) {
	data := "Name,Width,Height,Quantity\nGood,100,100,1\nBad,abc,100,1\nWorse,100,100,-2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Fixtures) != 1 {
		t.Errorf("expected 1 good fixture, got %d", len(result.Fixtures))
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %v", result.Errors)
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSV_SemicolonWarns(t *testing.T) {
	path := writeTemp(t, "semi.csv", "Name;Width;Height\nDesk;1400;700\n")
	result := ImportCSV(path)

	if len(result.Fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d: %v", len(result.Fixtures), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Error("expected a delimiter warning")
	}
}

func TestImportCSV_MissingRequiredColumn(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Name,Width,Quantity\nDesk,1400,1\n"), ',')
	if len(result.Errors) == 0 {
		t.Error("expected error for missing Height column")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Name", "Width", "Height", "Quantity"},
		{"Desk", 1400, 700, 1},
		{"Cabinet", 800, 600, 2},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	result := ImportExcel(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Fixtures) != 3 {
		t.Errorf("expected 3 fixtures, got %d", len(result.Fixtures))
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
