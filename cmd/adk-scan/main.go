// adk-scan is a small command line harness over the detection library,
// useful for poking at a workspace outside the IDE integration.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "adk-scan",
		Short:         "Detect and inspect ADK projects on disk",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newScanCommand())
	root.AddCommand(newConfigCommand())
	root.AddCommand(newValidateCommand())

	return root
}
