package probs

import (
	"fmt"
	"os"

	"huff/pkg"

	"github.com/spf13/cobra"
)

var ProbsCmd = &cobra.Command{
	Use:   "probs [sample] [probfile]",
	Short: "Compute a symbol probability table from a text sample",
	Long:  "Count symbol occurrences in a sample file and write a 128-line probability table, one decimal fraction per ASCII symbol value.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		sample := args[0]
		probfile := args[1]

		err := pkg.ComputeProbabilitiesFile(sample, probfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing probabilities from %s: %s\n", sample, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote probability table for %s to %s\n", sample, probfile)
	},
}
