package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planfit/planfit/internal/importer"
	"github.com/planfit/planfit/internal/model"
	"github.com/planfit/planfit/internal/project"
)

var (
	fixtureSize     string
	newFixtureGroup string
	newFixtureColor string
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Manage the fixture library",
	Long: `List, add, and import fixtures in the library. The library lives at
~/.planfit/library.json by default and is seeded with common furniture
when first used.

Examples:
  planfit fixtures list
  planfit fixtures add "Standing Desk" --size 1600x800 --group Workspace
  planfit fixtures import furniture.csv
  planfit fixtures import inventory.xlsx`,
}

var fixturesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library fixtures grouped by category",
	RunE:  runFixturesList,
}

var fixturesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a fixture to the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixturesAdd,
}

var fixturesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import fixtures from a CSV or Excel file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixturesImport,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
	fixturesCmd.AddCommand(fixturesListCmd)
	fixturesCmd.AddCommand(fixturesAddCmd)
	fixturesCmd.AddCommand(fixturesImportCmd)

	fixturesAddCmd.Flags().StringVar(&fixtureSize, "size", "", "fixture footprint in mm, WxH (required)")
	fixturesAddCmd.Flags().StringVar(&newFixtureGroup, "group", "", "fixture group, e.g. Workspace")
	fixturesAddCmd.Flags().StringVar(&newFixtureColor, "color", "", "display color, e.g. #4caf50")
	fixturesAddCmd.MarkFlagRequired("size")
}

func runFixturesList(cmd *cobra.Command, args []string) error {
	lib, libPath, err := loadLibrary()
	if err != nil {
		return err
	}

	fmt.Printf("Library: %s (%d fixtures)\n", libPath, len(lib.Fixtures))
	for _, group := range lib.Groups() {
		label := group
		if label == "" {
			label = "(no group)"
		}
		fmt.Printf("\n%s:\n", label)
		for _, f := range lib.ByGroup(group) {
			fmt.Printf("  %-24s %6.0f x %-6.0f mm", f.Name, f.Width, f.Height)
			if f.Color != "" {
				fmt.Printf("  %s", f.Color)
			}
			fmt.Println()
		}
	}
	return nil
}

func runFixturesAdd(cmd *cobra.Command, args []string) error {
	w, h, err := parseSize(fixtureSize)
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("fixture size must be positive, got %gx%g", w, h)
	}

	lib, libPath, err := loadLibrary()
	if err != nil {
		return err
	}

	f := model.NewFixture(args[0], w, h)
	f.Group = newFixtureGroup
	f.Color = newFixtureColor
	lib.Fixtures = append(lib.Fixtures, f)

	if err := project.SaveLibrary(libPath, lib); err != nil {
		return err
	}
	fmt.Printf("Added %q (%.0f x %.0f mm) to %s\n", f.Name, f.Width, f.Height, libPath)
	return nil
}

func runFixturesImport(cmd *cobra.Command, args []string) error {
	fixtures, err := importFixtureFile(args[0])
	if err != nil {
		return err
	}

	lib, libPath, err := loadLibrary()
	if err != nil {
		return err
	}
	lib.Fixtures = append(lib.Fixtures, fixtures...)
	if err := project.SaveLibrary(libPath, lib); err != nil {
		return err
	}

	fmt.Printf("Imported %d fixture(s) into %s\n", len(fixtures), libPath)
	return nil
}

// importFixtureFile reads fixtures from a CSV or Excel file, printing any
// per-row warnings and errors the importer collected.
func importFixtureFile(path string) ([]model.Fixture, error) {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		result = importer.ImportCSV(path)
	case ".xlsx", ".xlsm":
		result = importer.ImportExcel(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .csv or .xlsx", filepath.Ext(path))
	}

	for _, w := range result.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Printf("Error: %s\n", e)
	}
	if len(result.Fixtures) == 0 {
		return nil, fmt.Errorf("no fixtures imported from %s", path)
	}
	return result.Fixtures, nil
}
