package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/planfit/planfit/internal/calibrate"
	"github.com/planfit/planfit/internal/model"
	"github.com/planfit/planfit/internal/project"
)

var (
	lineStart  string
	lineEnd    string
	realLength float64
	imageSize  string
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Manage reference lines and the plan's pixel-to-mm scale",
	Long: `Add or remove reference lines drawn over the plan image and inspect
the derived scale. Each reference line pairs a pixel-space segment with
its known real-world length in millimeters; the plan scale is the mean
of all line scales.

Examples:
  planfit calibrate add --start 100,100 --end 600,100 --length 2500 --image 2000x1600
  planfit calibrate remove 0
  planfit calibrate show`,
}

var calibrateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reference line and recompute the scale",
	RunE:  runCalibrateAdd,
}

var calibrateRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a reference line by index and recompute the scale",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalibrateRemove,
}

var calibrateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show reference lines, scale, and consistency check",
	RunE:  runCalibrateShow,
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
	calibrateCmd.AddCommand(calibrateAddCmd)
	calibrateCmd.AddCommand(calibrateRemoveCmd)
	calibrateCmd.AddCommand(calibrateShowCmd)

	calibrateAddCmd.Flags().StringVar(&lineStart, "start", "", "line start in image pixels, x,y (required)")
	calibrateAddCmd.Flags().StringVar(&lineEnd, "end", "", "line end in image pixels, x,y (required)")
	calibrateAddCmd.Flags().Float64Var(&realLength, "length", 0, "real-world length in mm (required)")
	calibrateAddCmd.Flags().StringVar(&imageSize, "image", "", "plan image size in pixels, WxH (required)")
	calibrateAddCmd.MarkFlagRequired("start")
	calibrateAddCmd.MarkFlagRequired("end")
	calibrateAddCmd.MarkFlagRequired("length")
	calibrateAddCmd.MarkFlagRequired("image")
}

func runCalibrateAdd(cmd *cobra.Command, args []string) error {
	start, err := parsePoint(lineStart)
	if err != nil {
		return err
	}
	end, err := parsePoint(lineEnd)
	if err != nil {
		return err
	}
	imgW, imgH, err := parseSize(imageSize)
	if err != nil {
		return err
	}
	if realLength <= 0 {
		return fmt.Errorf("length must be positive, got %g", realLength)
	}

	plan, err := project.LoadOrCreatePlan(planPath)
	if err != nil {
		return err
	}

	line := model.NewReferenceLine(start, end, realLength, imgW, imgH)
	plan.AddLine(line)
	plan.Scale = calibrate.Compute(plan.ReferenceLines)

	if err := project.SavePlan(planPath, plan); err != nil {
		return err
	}

	fmt.Printf("Added reference line %d: %.1f px = %.0f mm (%.4f px/mm)\n",
		len(plan.ReferenceLines)-1, line.PixelLength, line.RealLength, line.Scale())
	printScale(plan)
	printValidation(calibrate.Validate(plan.ReferenceLines))
	return nil
}

func runCalibrateRemove(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}

	plan, err := project.LoadPlan(planPath)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(plan.ReferenceLines) {
		return fmt.Errorf("index %d out of range (plan has %d lines)", idx, len(plan.ReferenceLines))
	}

	plan.RemoveLine(idx)
	plan.Scale = calibrate.Compute(plan.ReferenceLines)

	if err := project.SavePlan(planPath, plan); err != nil {
		return err
	}

	fmt.Printf("Removed reference line %d, %d remaining\n", idx, len(plan.ReferenceLines))
	printScale(plan)
	return nil
}

func runCalibrateShow(cmd *cobra.Command, args []string) error {
	plan, err := project.LoadPlan(planPath)
	if err != nil {
		return err
	}

	if len(plan.ReferenceLines) == 0 {
		fmt.Println("No reference lines; plan is not calibrated.")
		return nil
	}

	fmt.Printf("Reference lines: %d\n", len(plan.ReferenceLines))
	for i, line := range plan.ReferenceLines {
		axis := "V"
		if line.HorizontalDominant() {
			axis = "H"
		}
		fmt.Printf("  %d: (%.0f,%.0f)-(%.0f,%.0f) [%s] %.1f px = %.0f mm (%.4f px/mm)\n",
			i, line.Start.X, line.Start.Y, line.End.X, line.End.Y,
			axis, line.PixelLength, line.RealLength, line.Scale())
	}
	printScale(plan)

	axes := calibrate.ComputeAxisScales(plan.ReferenceLines)
	if axes.ScaleX != nil && axes.ScaleY != nil {
		fmt.Printf("Axis scales: X %.4f px/mm, Y %.4f px/mm", *axes.ScaleX, *axes.ScaleY)
		if axes.MismatchPercent != nil {
			fmt.Printf(" (mismatch %.1f%%)", *axes.MismatchPercent)
		}
		fmt.Println()
	}

	printValidation(calibrate.Validate(plan.ReferenceLines))
	return nil
}

func printScale(plan model.Plan) {
	if plan.Scale == nil || !plan.Scale.Valid() {
		fmt.Println("Scale: not calibrated")
		return
	}
	fmt.Printf("Scale: %.4f px/mm (frame %dx%d px)\n",
		plan.Scale.PixelsPerMillimeter,
		int(plan.Scale.ImageWidth), int(plan.Scale.ImageHeight))
}

func printValidation(v model.ValidationResult) {
	if v.Message == "" {
		return
	}
	if v.IsValid {
		fmt.Printf("Check: %s\n", v.Message)
	} else {
		fmt.Printf("Warning: %s", v.Message)
		if v.InconsistentLine >= 0 {
			fmt.Printf(" (line %d)", v.InconsistentLine)
		}
		fmt.Println()
	}
}
