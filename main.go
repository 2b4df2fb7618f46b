package main

import (
	"os"

	"github.com/FyefoxxM/diff-explainer/cmd"
	_ "github.com/FyefoxxM/diff-explainer/version" // Import for version info
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
