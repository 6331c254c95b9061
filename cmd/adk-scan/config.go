package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arkaft/adk-agents/pkg/adkconfig"
)

func newConfigCommand() *cobra.Command {
	var asJSON bool

	command := &cobra.Command{
		Use:   "config [project]",
		Short: "Report ADK configuration signals for a project root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			if err := exitIfMissing(root); err != nil {
				return err
			}

			detector := adkconfig.NewDetector()
			info, err := detector.DetectConfig(root)
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ADK configuration: %s\n", yesNo(info.HasAdkConfig))
			fmt.Fprintf(out, "Google API configured: %s\n", yesNo(info.GoogleAPIConfigured))
			fmt.Fprintf(out, "Vertex AI configured: %s\n", yesNo(info.VertexAIConfigured))
			fmt.Fprintf(out, "MCP server configured: %s\n", yesNo(info.McpServerConfigured))
			if info.AdkVersion != "" {
				fmt.Fprintf(out, "ADK version: %s\n", info.AdkVersion)
			}

			if issues := detector.Validate(info); len(issues) > 0 {
				fmt.Fprintln(out)
				for _, issue := range issues {
					fmt.Fprintf(out, "%s %s\n", color.RedString("issue:"), issue)
				}
			}

			if recommendations := detector.Recommendations(info); len(recommendations) > 0 {
				fmt.Fprintln(out)
				for _, rec := range recommendations {
					fmt.Fprintf(out, "%s %s\n", color.YellowString("hint:"), rec)
				}
			}

			return nil
		},
	}

	command.Flags().BoolVar(&asJSON, "json", false, "emit JSON output")

	return command
}

func yesNo(b bool) string {
	if b {
		return color.GreenString("yes")
	}

	return "no"
}
