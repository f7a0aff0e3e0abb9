/*
Copyright © 2026 eslsoft
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Course content API for the design learning platform",
	Long: `atelier serves the course catalog, knowledge cards, case studies,
prompts, workflows and resources over HTTP, and keeps per-user progress,
favorites, history and assignment submissions in flat JSON files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
