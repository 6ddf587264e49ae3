package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ideapops/pkg/commands/options"
	"tableflip.dev/ideapops/pkg/runner/calendar"
	"tableflip.dev/ideapops/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Print a month, bolding days that hold ideas",
		Example: `
ideapops calendar
ideapops calendar --on="2026-12-1"
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
			s := calendar.Calendar{
				On:          day,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
