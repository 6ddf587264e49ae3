package note

import (
	"fmt"
	"strings"
)

// Color is one of the six fixed sticky-note colors.
type Color string

const (
	Yellow Color = "yellow"
	Pink   Color = "pink"
	Blue   Color = "blue"
	Green  Color = "green"
	Purple Color = "purple"
	Orange Color = "orange"
)

// DefaultColor is the fallback for persisted values outside the palette.
const DefaultColor = Yellow

// Palette returns the fixed color set, in display order.
func Palette() []Color {
	return []Color{Yellow, Pink, Blue, Green, Purple, Orange}
}

var hexes = map[Color]string{
	Yellow: "#f5d76e",
	Pink:   "#f78fb3",
	Blue:   "#7ec8e3",
	Green:  "#9bdeac",
	Purple: "#c39bd3",
	Orange: "#f5ab6e",
}

// Hex returns the terminal color for the palette entry. Unknown values map to
// the default entry so stale persisted data still renders.
func (c Color) Hex() string {
	if hex, ok := hexes[c]; ok {
		return hex
	}
	return hexes[DefaultColor]
}

// Known reports whether c is a palette member.
func (c Color) Known() bool {
	_, ok := hexes[c]
	return ok
}

// Normalize maps values outside the palette to the default entry.
func (c Color) Normalize() Color {
	if c.Known() {
		return c
	}
	return DefaultColor
}

func (c Color) String() string {
	return string(c)
}

// ParseColor converts user input to a palette Color.
func ParseColor(raw string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return DefaultColor, nil
	}
	if c.Known() {
		return c, nil
	}
	return DefaultColor, fmt.Errorf("note: unknown color %q", raw)
}
