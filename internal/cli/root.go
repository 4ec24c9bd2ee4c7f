// Package cli is the operator command line for the alert service.
package cli

import (
	"advisor-alert-srv/internal/cli/commands"

	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRoot(commands.ConnectFromConfig).Execute()
}

// NewRoot builds the command tree. connect opens the use case for commands that need it.
func NewRoot(connect commands.Connector) *cobra.Command {
	root := &cobra.Command{
		Use:           "alertctl",
		Short:         "Inspect and escalate advisor alerts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		commands.PreviewCmd(connect),
		commands.EscalateCmd(connect),
	)
	return root
}
