package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ideapops/pkg/commands/options"
	"tableflip.dev/ideapops/pkg/runner/get"
	"tableflip.dev/ideapops/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	ao := &options.AllOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "List the ideas on a day",
		Example: `
ideapops get
ideapops get --on="2026-2-28"
ideapops get --all --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := on.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				On:          day,
				All:         ao.All,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddAllArgs(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
