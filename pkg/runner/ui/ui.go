package ui

import (
	"context"

	"tableflip.dev/ideapops/pkg/app"
	"tableflip.dev/ideapops/pkg/store"
	teaui "tableflip.dev/ideapops/pkg/tui/app"
)

type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	svc := app.New(n.Persistence)
	if err := svc.Load(ctx); err != nil {
		return err
	}
	return teaui.Run(svc)
}
