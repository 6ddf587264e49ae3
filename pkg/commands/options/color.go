package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ideapops/pkg/note"
)

// ColorOptions picks a palette color explicitly instead of at random.
type ColorOptions struct {
	Color string
}

func AddColorArgs(cmd *cobra.Command, o *ColorOptions) {
	cmd.Flags().StringVar(&o.Color, "color", "",
		"Specify a sticky-note color. One of: "+paletteNames()+". Random when unset.")
	_ = cmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(note.Palette()))
		for _, c := range note.Palette() {
			names = append(names, string(c))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func paletteNames() string {
	out := ""
	for i, c := range note.Palette() {
		if i > 0 {
			out += ", "
		}
		out += string(c)
	}
	return out
}
