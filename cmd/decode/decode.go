package decode

import (
	"fmt"
	"os"

	"huff/pkg"

	"github.com/spf13/cobra"
)

var packed bool

var DecodeCmd = &cobra.Command{
	Use:   "decode [probfile] [encodedfile] [decodedfile]",
	Short: "Decode an encoded file with the code built from a probability table",
	Long:  "Build the Huffman tree from the same probability table used for encoding and decode the bit stream back into the original bytes.",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		probfile := args[0]
		encodedfile := args[1]
		decodedfile := args[2]

		err := pkg.DecodeFile(probfile, encodedfile, decodedfile, pkg.CodecOptions{Packed: packed})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding %s into %s: %s\n", encodedfile, decodedfile, err)
			os.Exit(1)
		}
		fmt.Printf("Successfully decoded %s into %s\n", encodedfile, decodedfile)
	},
}

func init() {
	DecodeCmd.Flags().BoolVarP(&packed, "packed", "P", false, "Read packed binary bits instead of '0'/'1' text")
}
