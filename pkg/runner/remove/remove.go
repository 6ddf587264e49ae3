package remove

import (
	"context"
	"fmt"

	"tableflip.dev/ideapops/pkg/app"
	"tableflip.dev/ideapops/pkg/printers"
	"tableflip.dev/ideapops/pkg/store"
)

type Remove struct {
	ID string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	svc := app.New(n.Persistence)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	idea := svc.Get(n.ID)
	if idea == nil {
		return fmt.Errorf("no idea with id %s", n.ID)
	}
	day := idea.Date
	svc.Remove(n.ID)

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(day)
	pp.Notes(svc.NotesForDate(day)...)

	return nil
}
