package cli

import (
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/errors"
	mpsio "github.com/matzehuels/mps/pkg/io"
)

// genCommand creates the gen command, which writes random instances for
// benchmarking the solvers.
func (c *CLI) genCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:     "gen <chords> [output]",
		Short:   "Generate a random chord set",
		Example: "  mps gen 5000 5000.in\n  mps gen --seed=7 12 | mps solve -",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil || count < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "chord count must be a non-negative integer, got %q", args[0])
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			output := stdio
			if len(args) == 2 {
				output = args[1]
			}

			s := chord.Random(count, rand.New(rand.NewPCG(seed, seed^0xdeadbeef)))
			if output == stdio {
				return mpsio.WriteChords(os.Stdout, s)
			}
			if err := mpsio.ExportChords(output, s); err != nil {
				return err
			}

			printSuccess("Generated %d chords on %d points", s.Count(), s.Len())
			printDetail("seed %d", seed)
			printFile(output)
			printNextStep("Solve it", "mps solve "+output)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: current time)")

	return cmd
}
