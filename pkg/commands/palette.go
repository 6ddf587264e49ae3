package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ideapops/pkg/runner/palette"
)

func addPalette(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the sticky-note color palette",
		Example: `
ideapops palette
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := palette.Palette{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
