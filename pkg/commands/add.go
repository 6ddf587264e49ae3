package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ideapops/pkg/commands/options"
	"tableflip.dev/ideapops/pkg/runner/add"
	"tableflip.dev/ideapops/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	co := &options.ColorOptions{}

	content := ""

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"pop"},
		Short:   "Pop a new idea onto a day",
		Example: `
ideapops add remember to water the plants
ideapops add --on="2/28" --color=pink buy party supplies
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the idea text")
			}
			content = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Content:     content,
				On:          on,
				Color:       co.Color,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddColorArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
