package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ideapops/pkg/commands/options"
	"tableflip.dev/ideapops/pkg/runner/remove"
	"tableflip.dev/ideapops/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm", "discard"},
		Short:   "Discard an idea by id",
		Example: `
ideapops remove 6ba7b810-9dad-11d1-80b4-00c04fd430c8
ideapops get --show-id
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				io.ID = args[0]
			}
			if io.ID == "" {
				return errors.New("requires the id of an idea, see: ideapops get --show-id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
