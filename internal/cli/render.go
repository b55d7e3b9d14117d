package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mps/pkg/pipeline"
	"github.com/matzehuels/mps/pkg/render"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output   string
	method   string
	format   string
	radius   float64
	labels   bool
	onlyPlan bool
	refresh  bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Draw a chord diagram with the planar subset highlighted",
		Long: `Render solves the input and draws every chord on a circle, with the
chords of the maximum planar subset highlighted.

Formats: dot, svg (default), pdf, png. PDF and PNG need rsvg-convert
on PATH. Without -o the diagram is written next to the input file.`,
		Example: `  mps render 12.in
  mps render --format=png --labels -o 12.png 12.in`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := c.baseOptions()
			popts.Refresh = opts.refresh
			popts.OnlyPlan = opts.onlyPlan
			flags := cmd.Flags()
			if flags.Changed("method") {
				popts.Method = opts.method
			}
			if flags.Changed("format") {
				popts.Format = opts.format
			}
			if flags.Changed("radius") {
				popts.Radius = opts.radius
			}
			if flags.Changed("labels") {
				popts.Labels = opts.labels
			}
			if popts.Format == "" {
				popts.Format = render.FormatSVG
			}
			if err := render.ValidateFormat(popts.Format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts.output, popts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format extension)")
	cmd.Flags().StringVarP(&opts.method, "method", "m", "", "DP method: bu, td")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, pdf, png")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "circle radius in inches (0 scales with the chord count)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label points with their positions")
	cmd.Flags().BoolVar(&opts.onlyPlan, "only-plan", false, "draw only the chords of the planar subset")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, output string, popts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	if output == "" {
		if input == stdio {
			output = stdio
		} else {
			output = replaceExt(input, popts.Format)
		}
	}

	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, input, in, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", popts.Format))

	if err := writeOutput(output, result.Artifact); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if output == stdio {
		return nil
	}

	printSuccess("Rendered %d of %d chords", result.Solution.Count, result.Stats.Chords)
	printStats(result.Stats.Chords, result.Solution.Count, result.Solution.Method, result.CacheInfo.RenderHit)
	printFile(output)
	return nil
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}
