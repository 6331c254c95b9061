package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkaft/adk-agents/pkg/fileval"
)

func newValidateCommand() *cobra.Command {
	var forReview bool

	command := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate files against size and type constraints",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator := fileval.Default()
			if forReview {
				validator = fileval.ForCodeReview()
			}

			results := validator.ValidateAll(args)
			out := cmd.OutOrStdout()

			for _, result := range results {
				if result.IsValid {
					fmt.Fprintf(out, "ok    %s (%s, %s)\n",
						result.Path, result.Type, fileval.FormatSize(result.Size))
				} else {
					fmt.Fprintf(out, "skip  %s: %s\n", result.Path, result.Reason)
				}
			}

			stats := fileval.Summarize(results)
			fmt.Fprintf(out, "\n%d of %d files valid (%.0f%%), %s total\n",
				stats.ValidFiles, stats.TotalFiles, stats.ValidPercentage(),
				fileval.FormatSize(stats.TotalSize))

			return nil
		},
	}

	command.Flags().BoolVar(&forReview, "review", false,
		"use the stricter code review constraints")

	return command
}
