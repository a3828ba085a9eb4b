package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/planfit/planfit/internal/export"
	"github.com/planfit/planfit/internal/model"
	"github.com/planfit/planfit/internal/project"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the plan layout to PDF, labels, Excel, or DXF",
	Long: `Export the placed fixtures of a calibrated plan. Output paths are
relative to the configured export directory unless absolute.

Examples:
  planfit export pdf layout.pdf
  planfit export labels labels.pdf
  planfit export schedule schedule.xlsx
  planfit export dxf layout.dxf`,
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <output>",
	Short: "Export a PDF with the scaled layout drawing and fixture schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  makeExportRun(export.ExportPDF),
}

var exportLabelsCmd = &cobra.Command{
	Use:   "labels <output>",
	Short: "Export QR-coded fixture labels (Avery 5160 sheet layout)",
	Args:  cobra.ExactArgs(1),
	RunE:  makeExportRun(export.ExportLabels),
}

var exportScheduleCmd = &cobra.Command{
	Use:   "schedule <output>",
	Short: "Export the placement schedule as an Excel workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  makeExportRun(export.ExportSchedule),
}

var exportDXFCmd = &cobra.Command{
	Use:   "dxf <output>",
	Short: "Export fixture outlines as a DXF drawing in millimeters",
	Args:  cobra.ExactArgs(1),
	RunE:  makeExportRun(export.ExportDXF),
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportPDFCmd)
	exportCmd.AddCommand(exportLabelsCmd)
	exportCmd.AddCommand(exportScheduleCmd)
	exportCmd.AddCommand(exportDXFCmd)
}

// makeExportRun wraps an export function into a cobra RunE that loads the
// plan and resolves the output path against the configured export directory.
func makeExportRun(fn func(string, model.Plan) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		plan, err := project.LoadPlan(planPath)
		if err != nil {
			return err
		}

		out := args[0]
		if !filepath.IsAbs(out) && cfg.ExportDir != "" {
			out = filepath.Join(cfg.ExportDir, out)
		}

		if err := fn(out, plan); err != nil {
			return err
		}
		fmt.Printf("Exported %d fixture(s) to %s\n", len(plan.Placed), out)
		return nil
	}
}
