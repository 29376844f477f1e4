package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, set with -ldflags "-X github.com/katalvlaran/gremlin/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
)

// NewVersionCommand returns the command to print the gremlinq version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gremlinq version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gremlinq %s (commit %s)\n", Version, Commit)
			return err
		},
	}
}
