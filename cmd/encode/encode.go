package encode

import (
	"fmt"
	"os"

	"huff/pkg"

	"github.com/spf13/cobra"
)

var packed bool

var EncodeCmd = &cobra.Command{
	Use:   "encode [probfile] [datafile] [encodedfile]",
	Short: "Encode a data file with the code built from a probability table",
	Long:  "Build the Huffman tree from a probability table and encode the data file into a stream of '0'/'1' characters, or packed bits with --packed.",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		probfile := args[0]
		datafile := args[1]
		encodedfile := args[2]

		err := pkg.EncodeFile(probfile, datafile, encodedfile, pkg.CodecOptions{Packed: packed})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding %s into %s: %s\n", datafile, encodedfile, err)
			os.Exit(1)
		}
		fmt.Printf("Successfully encoded %s into %s\n", datafile, encodedfile)
	},
}

func init() {
	EncodeCmd.Flags().BoolVarP(&packed, "packed", "P", false, "Write packed binary bits instead of '0'/'1' text")
}
