package codes

import (
	"fmt"
	"os"

	"huff/pkg"

	"github.com/spf13/cobra"
)

var output string

var CodesCmd = &cobra.Command{
	Use:   "codes [probfile]",
	Short: "Generate the Huffman code listing for a probability table",
	Long:  "Build the Huffman tree from a probability table and write one line per symbol: the bit path for printable symbols, \"No code\" for the rest.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		probfile := args[0]

		err := pkg.GenerateCodesFile(probfile, output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating codes from %s: %s\n", probfile, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote code listing for %s to %s\n", probfile, output)
	},
}

func init() {
	CodesCmd.Flags().StringVarP(&output, "output", "o", "codes.txt", "Listing output file")
}
