package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arkaft/adk-agents/pkg/adkdetect"
	"github.com/arkaft/adk-agents/pkg/fileval"
)

type scanFlags struct {
	maxDepth int
	excludes []string
	asJSON   bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	command := &cobra.Command{
		Use:   "scan [workspace]",
		Short: "Enumerate ADK project roots beneath a workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			if err := exitIfMissing(root); err != nil {
				return err
			}

			detector, err := adkdetect.New(
				adkdetect.WithMaxDepth(flags.maxDepth),
				adkdetect.WithExcludePatterns(flags.excludes, false),
			)
			if err != nil {
				return err
			}

			projects := detector.ListProjects(root)

			if flags.asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(projects)
			}

			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No ADK projects found.")
				return nil
			}

			for _, project := range projects {
				printProject(cmd, project)
			}

			return nil
		},
	}

	command.Flags().IntVar(&flags.maxDepth, "max-depth", adkdetect.DefaultMaxDepth,
		"maximum directory depth to search")
	command.Flags().StringArrayVar(&flags.excludes, "exclude", nil,
		"additional glob patterns to exclude from the scan")
	command.Flags().BoolVar(&flags.asJSON, "json", false, "emit JSON output")

	return command
}

var typeColors = map[adkdetect.ProjectType]*color.Color{
	adkdetect.RustAdk:      color.New(color.FgRed),
	adkdetect.PythonAdk:    color.New(color.FgGreen),
	adkdetect.McpAdkServer: color.New(color.FgCyan),
	adkdetect.Mixed:        color.New(color.FgYellow),
}

func printProject(cmd *cobra.Command, project adkdetect.ProjectInfo) {
	display := project.Type.Display()
	if c, ok := typeColors[project.Type]; ok {
		display = c.Sprint(display)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%s)\n",
		display, project.Path, fileval.FormatSize(project.EstimatedSize))
	if project.AdkVersion != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "    ADK version: %s\n", project.AdkVersion)
	}
	if project.DetectionRule != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", project.DetectionRule)
	}
}

// exitIfMissing keeps argument errors uniform across subcommands.
func exitIfMissing(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	return nil
}
