package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planfit/planfit/internal/engine"
	"github.com/planfit/planfit/internal/model"
	"github.com/planfit/planfit/internal/project"
)

var (
	areaSpec     string
	fixtureNames []string
	fixtureFile  string
	clearance    float64
	seqIDs       bool
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Auto-place fixtures into a calibrated plan area",
	Long: `Select fixtures from the library by name and place them into a
rectangular area of the plan. The area is given in millimeters in the
plan's calibrated frame. Fixtures are placed largest first, scanning
top-left to bottom-right, trying the unrotated orientation before the
90-degree one. Fixtures that do not fit are reported and skipped.

Examples:
  planfit place --area 0,0,5000,4000 --fixture Desk --fixture Chair
  planfit place --area 500,500,3000,2500 --fixture Sofa --clearance 100
  planfit place --area 0,0,5000,4000 --file furniture.csv`,
	RunE: runPlace,
}

func init() {
	rootCmd.AddCommand(placeCmd)

	placeCmd.Flags().StringVar(&areaSpec, "area", "", "placement area in mm, x,y,w,h (required)")
	placeCmd.Flags().StringArrayVarP(&fixtureNames, "fixture", "f", nil, "library fixture name to place (repeatable)")
	placeCmd.Flags().StringVar(&fixtureFile, "file", "", "CSV or Excel file with fixtures to place")
	placeCmd.Flags().Float64Var(&clearance, "clearance", -1, "margin in mm kept free around the area edges (default from config)")
	placeCmd.Flags().BoolVar(&seqIDs, "sequential-ids", false, "use sequential placement IDs instead of random ones")
	placeCmd.MarkFlagRequired("area")
}

func runPlace(cmd *cobra.Command, args []string) error {
	area, err := parseArea(areaSpec)
	if err != nil {
		return err
	}

	plan, err := project.LoadPlan(planPath)
	if err != nil {
		return err
	}
	if plan.Scale == nil || !plan.Scale.Valid() {
		return fmt.Errorf("plan %q is not calibrated; add reference lines first", plan.Name)
	}

	if len(fixtureNames) == 0 && fixtureFile == "" {
		return fmt.Errorf("nothing to place; use --fixture or --file")
	}

	var candidates []model.Fixture
	if len(fixtureNames) > 0 {
		lib, libPath, err := loadLibrary()
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Using library: %s (%d fixtures)\n", libPath, len(lib.Fixtures))
		}
		for _, name := range fixtureNames {
			f, ok := lib.FindByName(name)
			if !ok {
				return fmt.Errorf("fixture %q not found in library", name)
			}
			candidates = append(candidates, f)
		}
	}
	if fixtureFile != "" {
		imported, err := importFixtureFile(fixtureFile)
		if err != nil {
			return err
		}
		candidates = append(candidates, imported...)
	}

	margin := clearance
	if margin < 0 {
		margin = cfg.DefaultClearance
	}
	settings := engine.Settings{Clearance: margin}

	var eng *engine.Engine
	if seqIDs {
		eng = engine.NewWithIDs(settings, &engine.SequentialGenerator{})
	} else {
		eng = engine.New(settings)
	}

	placed := eng.Place(area, candidates, plan.Placed, *plan.Scale)
	if len(placed) == 0 {
		fmt.Println("No fixtures could be placed in the given area.")
		return nil
	}

	plan.Placed = append(plan.Placed, placed...)
	if err := project.SavePlan(planPath, plan); err != nil {
		return err
	}

	fmt.Printf("Placed %d of %d fixtures:\n", len(placed), len(candidates))
	for _, pf := range placed {
		rot := ""
		if pf.Rotation == model.Rotation90 {
			rot = " (rotated)"
		}
		fmt.Printf("  %s %s at (%.0f, %.0f) px%s\n",
			pf.ID, pf.Fixture.Name, pf.Position.X, pf.Position.Y, rot)
	}
	if omitted := len(candidates) - len(placed); omitted > 0 {
		fmt.Printf("%d fixture(s) did not fit and were skipped.\n", omitted)
	}
	return nil
}

// loadLibrary loads the fixture library honoring the config override.
func loadLibrary() (model.Library, string, error) {
	if cfg.LibraryPath != "" {
		lib, err := project.LoadLibrary(cfg.LibraryPath)
		return lib, cfg.LibraryPath, err
	}
	return project.LoadOrCreateLibrary()
}
