package add

import (
	"context"

	"tableflip.dev/ideapops/pkg/app"
	"tableflip.dev/ideapops/pkg/note"
	"tableflip.dev/ideapops/pkg/printers"
	"tableflip.dev/ideapops/pkg/store"
	"tableflip.dev/ideapops/pkg/timeutil"
)

type Add struct {
	Content string
	On      string // day to pin the note to, empty or "today" means today
	Color   string // palette name, empty picks one

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	day, err := resolveDay(n.On)
	if err != nil {
		return err
	}

	svc := app.New(n.Persistence)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	picker := note.NewPicker()
	var c note.Color
	if n.Color == "" {
		exclude, _ := svc.LastColorOn(day)
		c = picker.Color(exclude)
	} else {
		if c, err = note.ParseColor(n.Color); err != nil {
			return err
		}
	}

	idea := note.New(n.Content, day, c, picker.Rotation())
	if err := svc.Add(idea); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(day)
	pp.Notes(svc.NotesForDate(day)...)

	return nil
}

func resolveDay(on string) (string, error) {
	if on == "" || on == "today" {
		return timeutil.Today(), nil
	}
	t, err := timeutil.ParseDay(on)
	if err != nil {
		return "", err
	}
	return timeutil.Day(t), nil
}
