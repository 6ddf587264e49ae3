package palette

import (
	"context"

	"tableflip.dev/ideapops/pkg/printers"
)

type Palette struct{}

func (n *Palette) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Palette")
	pp.Palette()
	return nil
}
