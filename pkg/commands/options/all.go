package options

import (
	"github.com/spf13/cobra"
)

// AllOptions widens a command from one day to every day with notes.
type AllOptions struct {
	All bool
}

func AddAllArgs(cmd *cobra.Command, o *AllOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Include every day, not just the selected one.")
}
