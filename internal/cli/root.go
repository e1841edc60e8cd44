// Package cli implements the imposter command line: flag parsing, progress
// output, and the preview mode. All real work happens in the poster package.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/imposter/internal/layout"
	"github.com/ironsheep/imposter/internal/poster"
)

var (
	sizeFlag      string
	dpiFlag       int
	overlapFlag   float64
	blackAndWhite bool
	lineColorFlag string
	previewFlag   bool
	noRotateFlag  bool
)

// rootCmd is the one and only command; imposter has no subcommands.
var rootCmd = &cobra.Command{
	Use:     "imposter [flags] image output.pdf",
	Version: "dev",
	Short:   "Split an image into letter-sized pages for poster printing",
	Long: `imposter slices one image into a grid of overlapping letter-sized PDF
pages. Print them, trim along the dashed boxes, align the dashed overlap
lines, and tape the sheets together into a poster of the requested size.

With --preview only the page count is computed; no output is written.`,
	Example: `  imposter -s 24x36 --dpi 300 --overlap 0.5 image.jpg poster.pdf
  imposter --preview -s 20x30 image.jpg`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&sizeFlag, "size", "s", "20x30", "Poster size in inches as WIDTHxHEIGHT")
	rootCmd.Flags().IntVar(&dpiFlag, "dpi", 300, "Print resolution in dots per inch")
	rootCmd.Flags().Float64Var(&overlapFlag, "overlap", 0.25, "Overlap between pages in inches")
	rootCmd.Flags().BoolVarP(&blackAndWhite, "black-and-white", "b", false, "Convert the image to black and white")
	rootCmd.Flags().StringVar(&lineColorFlag, "line-color", "black", "Alignment line color (name or #RRGGBB)")
	rootCmd.Flags().BoolVar(&previewFlag, "preview", false, "Show how many pages are needed without writing anything")
	rootCmd.Flags().BoolVar(&noRotateFlag, "no-rotate", false, "Never turn pages landscape, even when it saves paper")
}

func run(cmd *cobra.Command, args []string) error {
	width, height, err := parseSize(sizeFlag)
	if err != nil {
		return err
	}

	req := poster.Request{
		ImagePath: args[0],
		Spec: layout.PosterSpec{
			WidthIn:     width,
			HeightIn:    height,
			DPI:         dpiFlag,
			OverlapIn:   overlapFlag,
			AllowRotate: !noRotateFlag,
		},
		BlackAndWhite: blackAndWhite,
		LineColor:     lineColorFlag,
	}

	gen := poster.New()
	gen.Progress = consoleProgress{}

	if previewFlag {
		grid, err := gen.Preview(req)
		if err != nil {
			return err
		}
		PrintLabelValue("Poster size", fmt.Sprintf("%g\" x %g\"", width, height))
		PrintLabelValue("Pages needed", fmt.Sprintf("%d columns x %d rows = %d total pages (%s)",
			grid.Columns, grid.Rows, grid.Pages(), grid.Orientation))
		PrintLabelValue("Resolution", fmt.Sprintf("%d dpi, %g\" overlap", dpiFlag, overlapFlag))
		return nil
	}

	if len(args) < 2 {
		return fmt.Errorf("output PDF path required (or use --preview)")
	}
	req.OutputPath = args[1]

	result, err := gen.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	grid := result.Plan.Grid
	PrintSuccess(fmt.Sprintf("PDF saved as: %s", req.OutputPath))
	PrintLabelValue("Pages", fmt.Sprintf("%d (%d columns x %d rows, %s)",
		grid.Pages(), grid.Columns, grid.Rows, grid.Orientation))
	return nil
}

// consoleProgress forwards pipeline progress to the terminal.
type consoleProgress struct{}

func (consoleProgress) Infof(format string, args ...any) {
	PrintInfo(fmt.Sprintf(format, args...))
}

func (consoleProgress) Warnf(format string, args ...any) {
	PrintWarning(fmt.Sprintf(format, args...))
}

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the command.
func Execute() error {
	return rootCmd.Execute()
}
