package cli

import (
	"fmt"

	"codeberg.org/commentgen/server/internal/client"
	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCommand(endpoint *string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "commentgen %s (commit %s, built %s)\napi: %s\n",
				version, commit, date, client.New(*endpoint).BaseURL())
			return err
		},
	}
}
