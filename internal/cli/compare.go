package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mps/pkg/compare"
)

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare <result-a> <result-b>",
		Short: "Compare two result files line by line",
		Long: `Compare checks that two solve outputs select the same number of chords
and then reports every chord line where they differ. Files ending in
.json are read as the documents written by solve --json. The command
exits with status 1 when the results are not identical.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			rep, err := compare.Files(args[0], args[1])
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(rep); err != nil {
					return err
				}
			} else {
				printReport(rep, elapsed)
			}

			if !rep.Identical() {
				return fmt.Errorf("%s and %s differ", args[0], args[1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

// printReport prints rep in the comparator's traditional wording.
func printReport(rep *compare.Report, elapsed time.Duration) {
	if !rep.SameCount() {
		printError("Results are different")
		printDetail("count: %d vs %d", rep.CountA, rep.CountB)
		return
	}
	printSuccess("Results are the same")
	printInfo("Start comparing the edges")
	for _, d := range rep.Diffs {
		printWarning("Edge %d is different", d.Index)
		printDetail("pair1: (%d, %d), pair2: (%d, %d)", d.A.Head, d.A.Tail, d.B.Head, d.B.Tail)
	}
	printDetail("Execution time for comparing edges: %f seconds", elapsed.Seconds())
	if len(rep.Diffs) > 0 {
		printError("Total %d edges are different", len(rep.Diffs))
		return
	}
	printSuccess("All edges are the same")
}
