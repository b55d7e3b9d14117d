package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mpsio "github.com/matzehuels/mps/pkg/io"
	"github.com/matzehuels/mps/pkg/pipeline"
	"github.com/matzehuels/mps/pkg/rusage"
)

// spinnerThreshold is the input size in bytes above which solve shows a
// spinner. Smaller inputs finish before the first frame would be drawn.
const spinnerThreshold = 64 << 10

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	method  string
	seed    uint64
	trace   bool
	json    bool
	refresh bool
	usage   bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <input> [output]",
		Short: "Find a maximum planar subset of a chord set",
		Long: `Solve reads a chord file and writes a maximum planar subset.

The input starts with the number of points 2N, followed by N lines
"a b" naming the endpoints of each chord. The output starts with the
subset size, followed by one "head tail" line per selected chord, sorted
by head. Use "-" for stdin or stdout; the output defaults to stdout.`,
		Example: `  mps solve 12.in 12.out
  mps solve --method=bu --trace 12.in 12.out
  mps solve --json 12.in`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := c.baseOptions()
			popts.Format = ""
			popts.Refresh = opts.refresh
			if cmd.Flags().Changed("method") {
				popts.Method = opts.method
			}
			if cmd.Flags().Changed("seed") {
				popts.Seed = opts.seed
			}

			output := stdio
			if len(args) == 2 {
				output = args[1]
			}
			return c.runSolve(cmd.Context(), args[0], output, popts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", "", "DP method: bu (bottom-up), td (top-down, default)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for the randomized output sort")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print the first subproblems visited and the root")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the result as JSON instead of the text format")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&opts.usage, "usage", true, "print CPU time and peak memory")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, input, output string, popts pipeline.Options, opts solveOpts) error {
	logger := loggerFromContext(ctx)

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

	spinner := newSpinnerWithContext(ctx, "Solving "+input+"...")
	if f, ok := in.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && fi.Size() > spinnerThreshold {
			spinner.Start()
		}
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, input, in, popts)
	if spinner.Cancelled() {
		return ctx.Err()
	}
	spinner.Stop()
	if err != nil {
		return err
	}
	sol := result.Solution
	prog.done(fmt.Sprintf("Solved %d chords", result.Stats.Chords))

	var buf bytes.Buffer
	if opts.json {
		err = mpsio.WriteJSON(&buf, sol, result.ID)
	} else {
		err = mpsio.WriteResult(&buf, sol.Count, sol.Pairs)
	}
	if err != nil {
		return err
	}
	if err := writeOutput(output, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if output == stdio {
		return nil
	}

	printSuccess("Number of chords: %s", StyleNumber.Render(fmt.Sprint(result.Stats.Chords)))
	if opts.trace {
		fmt.Println(sol.Trace.String())
		if logger.GetLevel() <= LogDebug {
			fmt.Println(traceTable(&sol.Trace))
		}
	}
	printStats(result.Stats.Chords, sol.Count, sol.Method, result.CacheInfo.SolveHit)
	printFile(output)

	if opts.usage {
		u, err := rusage.Snapshot()
		if err != nil {
			logger.Warn("resource usage unavailable", "err", err)
			return nil
		}
		fmt.Println(u.String())
	}
	return nil
}
