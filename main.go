package main

import (
	"os"

	codes "huff/cmd/codes"
	decode "huff/cmd/decode"
	encode "huff/cmd/encode"
	probs "huff/cmd/probs"
	version "huff/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huff",
	Short: "Huffman coding utility",
	Long:  "huff computes symbol probabilities, derives Huffman codes from them, and encodes or decodes files with the resulting prefix-free code.",
}

func main() {
	rootCmd.AddCommand(probs.ProbsCmd)
	rootCmd.AddCommand(codes.CodesCmd)
	rootCmd.AddCommand(encode.EncodeCmd)
	rootCmd.AddCommand(decode.DecodeCmd)
	rootCmd.AddCommand(version.VersionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
