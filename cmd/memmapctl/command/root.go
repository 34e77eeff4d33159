// Package command holds the commands for the memmapctl CLI
package command

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the root command for the memmapctl CLI
func NewCommand() (cmd *cobra.Command) {
	var capacity int64

	cmd = &cobra.Command{
		Use:          "memmapctl",
		Short:        "in-memory hash map CLI",
		Long:         `memmapctl drives a fixed capacity in-memory hash map with linear probing, either through an interactive menu or a timed benchmark workload.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		NewReplCommand(&capacity),
		NewBenchCommand(&capacity),
	)

	cmd.PersistentFlags().Int64Var(&capacity, "capacity", 15000, "number of slots in the hash map")

	return cmd
}
