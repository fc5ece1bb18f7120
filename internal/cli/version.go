package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridable at build time via -ldflags.
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the a11y version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("a11y", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
