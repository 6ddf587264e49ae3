package get

import (
	"context"
	"fmt"
	"sort"

	"tableflip.dev/ideapops/pkg/app"
	"tableflip.dev/ideapops/pkg/note"
	"tableflip.dev/ideapops/pkg/printers"
	"tableflip.dev/ideapops/pkg/store"
	"tableflip.dev/ideapops/pkg/timeutil"
)

type Get struct {
	ShowID bool
	On     string
	All    bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	svc := app.New(n.Persistence)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if !n.All {
		day, err := resolveDay(n.On)
		if err != nil {
			return err
		}
		notes := svc.NotesForDate(day)
		pp.TitleWithCount(day, len(notes))
		pp.Notes(notes...)
		return nil
	}

	byDay := make(map[string][]*note.Note)
	for _, idea := range svc.All() {
		byDay[idea.Date] = append(byDay[idea.Date], idea)
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	// Canonical day strings sort chronologically; newest day first.
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	for _, day := range days {
		notes := svc.NotesForDate(day)
		pp.TitleWithCount(day, len(notes))
		pp.Notes(notes...)
	}

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
