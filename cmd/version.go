package cmd

import (
	"fmt"

	"github.com/FyefoxxM/diff-explainer/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of diff-explainer`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Git Diff Explainer v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
