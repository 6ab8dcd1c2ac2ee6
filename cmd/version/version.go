package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "View huff's version",
	Long:  "Display the version of the huff Huffman coding tool installed on your system.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var version string = "huff version 0.1.0"
		fmt.Println(version)

		return nil
	},
}
