package calendar

import (
	"context"

	"tableflip.dev/ideapops/pkg/app"
	"tableflip.dev/ideapops/pkg/printers"
	"tableflip.dev/ideapops/pkg/store"
	"tableflip.dev/ideapops/pkg/timeutil"
)

type Calendar struct {
	On string

	Persistence store.Persistence
}

func (n *Calendar) Do(ctx context.Context) error {
	svc := app.New(n.Persistence)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	on := n.On
	if on == "" || on == "today" {
		on = timeutil.Today()
	}
	t, err := timeutil.ParseDay(on)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Calendar(t, svc.All()...)

	return nil
}
