/*
Copyright © 2026 eslsoft
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eslsoft/atelier/internal/infrastructure/catalog"
)

// validateCmd checks the embedded content fixtures without starting a server.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the embedded content catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("catalog validation failed: %w", err)
		}

		cmd.Printf("courses:     %d\n", len(cat.Courses))
		cmd.Printf("knowledge:   %d\n", len(cat.Knowledge))
		cmd.Printf("cases:       %d\n", len(cat.Cases))
		cmd.Printf("prompts:     %d\n", len(cat.Prompts))
		cmd.Printf("workflows:   %d\n", len(cat.Workflows))
		cmd.Printf("resources:   %d\n", len(cat.Resources))
		cmd.Printf("assignments: %d\n", len(cat.Assignments))
		cmd.Println("catalog OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
