// Package gesture disambiguates pointer input into taps, swipes, and long
// presses for the card stack.
package gesture

import "time"

// Kind classifies a recognized gesture.
type Kind int

const (
	None Kind = iota
	Tap
	Swipe
	LongPress
)

// Direction records which way a swipe exited. It only drives the exit
// animation; the stack always cycles forward.
type Direction int

const (
	Left Direction = iota
	Right
)

// Event is a recognized gesture.
type Event struct {
	Kind      Kind
	Direction Direction
}

const (
	// DefaultSwipeThreshold is the horizontal displacement, in cells, past
	// which a drag becomes a swipe.
	DefaultSwipeThreshold = 8
	// DefaultHoldDuration is how long a press must stay put to become a
	// long press.
	DefaultHoldDuration = 500 * time.Millisecond
)

// Recognizer turns press/move/release reports into gesture events. It is
// fed from the single-threaded event loop; the hold deadline is checked by
// an external timer against the press sequence number, so a stale timer
// from an earlier press can never fire a long press for a later one.
type Recognizer struct {
	SwipeThreshold int
	HoldDuration   time.Duration

	pressed bool
	dragged bool
	seq     int
	originX int
	originY int
}

// NewRecognizer returns a Recognizer with the default thresholds.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		SwipeThreshold: DefaultSwipeThreshold,
		HoldDuration:   DefaultHoldDuration,
	}
}

// Press starts tracking a pointer press and returns the press sequence
// number to arm a hold timer with.
func (r *Recognizer) Press(x, y int) int {
	r.pressed = true
	r.dragged = false
	r.originX = x
	r.originY = y
	r.seq++
	return r.seq
}

// Move reports pointer motion while pressed. Crossing the swipe threshold
// recognizes the swipe immediately; any motion short of it cancels a pending
// long press without side effects.
func (r *Recognizer) Move(x, y int) (Event, bool) {
	if !r.pressed {
		return Event{}, false
	}
	dx := x - r.originX
	if dx >= r.SwipeThreshold || -dx >= r.SwipeThreshold {
		r.reset()
		return Event{Kind: Swipe, Direction: direction(dx)}, true
	}
	r.dragged = true
	return Event{}, false
}

// Release ends the press. A release past the threshold is a swipe; a short
// still press is a tap; anything else recognizes nothing.
func (r *Recognizer) Release(x, y int) (Event, bool) {
	if !r.pressed {
		return Event{}, false
	}
	dx := x - r.originX
	dragged := r.dragged
	r.reset()
	if dx >= r.SwipeThreshold || -dx >= r.SwipeThreshold {
		return Event{Kind: Swipe, Direction: direction(dx)}, true
	}
	if !dragged {
		return Event{Kind: Tap}, true
	}
	return Event{}, false
}

// HoldExpired is called when the hold timer armed at Press(seq) fires. It
// recognizes a long press only if that same press is still down and has not
// dragged; stale or cancelled timers recognize nothing.
func (r *Recognizer) HoldExpired(seq int) (Event, bool) {
	if !r.pressed || seq != r.seq || r.dragged {
		return Event{}, false
	}
	r.reset()
	return Event{Kind: LongPress}, true
}

// Cancel forgets the current press, e.g. when the pointer leaves the card.
func (r *Recognizer) Cancel() {
	r.reset()
}

func (r *Recognizer) reset() {
	r.pressed = false
	r.dragged = false
}

func direction(dx int) Direction {
	if dx < 0 {
		return Left
	}
	return Right
}
