package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/site2c/site2c/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the site2c version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("site2c " + version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
