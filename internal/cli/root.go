// Package cli holds the command tree of the scheduling API binary.
package cli

import "github.com/spf13/cobra"

// RootCmd runs the server when invoked without a subcommand.
func RootCmd() *cobra.Command {
	serve := ServeCmd()

	root := &cobra.Command{
		Use:   "scheduling-api",
		Short: "Appointment scheduling API",
		Long: `Multi-tenant appointment booking: businesses publish working hours and
services, clients book staff members, and every booking is validated against
conflicts, working hours, lead time, duration and tenant.`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve)
	root.AddCommand(MigrateCmd())
	return root
}
