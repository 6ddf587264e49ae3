package note

import (
	"math/rand"
	"time"
)

// Rotation bounds, in degrees. Tilt is cosmetic and fixed at creation.
const (
	maxTilt  = 3.5
	tiltStep = 0.1
)

// Picker chooses the cosmetic fields of a new note. Intn is injectable so
// tests can drive the exclusion logic deterministically.
type Picker struct {
	Intn func(n int) int
}

// NewPicker returns a Picker seeded from the clock.
func NewPicker() *Picker {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Picker{Intn: r.Intn}
}

// Color picks a random palette entry, excluding the given color when doing so
// leaves at least one candidate. Pass an unknown color (or empty string) to
// pick unconstrained.
func (p *Picker) Color(exclude Color) Color {
	palette := Palette()
	candidates := make([]Color, 0, len(palette))
	for _, c := range palette {
		if c != exclude {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = palette
	}
	return candidates[p.Intn(len(candidates))]
}

// Rotation picks a tilt in [-maxTilt, maxTilt] at tiltStep granularity.
func (p *Picker) Rotation() float64 {
	steps := int(2*maxTilt/tiltStep) + 1
	return -maxTilt + tiltStep*float64(p.Intn(steps))
}
