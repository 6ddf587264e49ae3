package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ideapops/pkg/note"
)

// PrettyPrint writes human-readable note listings to stdout.
type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("6ba7b810-9dad-11d1-80b4-00c04fd430c8  "))

	// fatih/color has no truecolor API, so the palette maps to the nearest
	// ANSI attributes instead of the exact hex shades.
	dotColors = map[note.Color]*color.Color{
		note.Yellow: color.New(color.FgHiYellow),
		note.Pink:   color.New(color.FgHiMagenta),
		note.Blue:   color.New(color.FgHiCyan),
		note.Green:  color.New(color.FgHiGreen),
		note.Purple: color.New(color.FgMagenta),
		note.Orange: color.New(color.FgYellow),
	}
)

func dot(c note.Color) string {
	if p, ok := dotColors[c.Normalize()]; ok {
		return p.Sprint("●")
	}
	return "●"
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" idea")
	default:
		_, _ = c.Println(" ideas")
	}
}

// Notes prints a day's notes, newest first, one row per note.
func (pp *PrettyPrint) Notes(notes ...*note.Note) {
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "

	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, n := range notes {
		if pp.ShowID {
			tbl.AddRow(id.Sprint(n.ID), dot(n.Color), n.Content)
		} else {
			tbl.AddRow(dot(n.Color), n.Content)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Palette prints the sticky-note color legend.
func (pp *PrettyPrint) Palette() {
	b := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Color"), b.Sprint("Hex"), b.Sprint("Sample"))
	for _, c := range note.Palette() {
		tbl.AddRow(string(c), c.Hex(), dot(c))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
