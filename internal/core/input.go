package core

import "strings"

// Action is a player intent independent of the device that produced it.
// Actions combine as bit flags.
type Action uint8

const (
	ActionLeft    Action = 1 << iota // Paddle left, sampled as held
	ActionRight                      // Paddle right, sampled as held
	ActionConfirm                    // Start or replay
	ActionQuit                       // Leave from title, result or game over
)

var actionNames = []string{"left", "right", "confirm", "quit"}

func (a Action) String() string {
	if a == 0 {
		return "none"
	}
	var names []string
	for i, name := range actionNames {
		if a&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "+")
}

// InputFrame is everything the player did during one tick.
type InputFrame struct {
	Actions Action
	Clicks  []Point // Pointer presses in field units, oldest first
	Pick    int     // 1-based answer chosen by keyboard, 0 when unset
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set adds a to the frame.
func (f *InputFrame) Set(a Action) {
	f.Actions |= a
}

// Has reports whether every action in a is set.
func (f InputFrame) Has(a Action) bool {
	return a != 0 && f.Actions&a == a
}

// Click records a pointer press at field coordinates.
func (f *InputFrame) Click(x, y float64) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Empty reports whether nothing happened.
func (f InputFrame) Empty() bool {
	return f.Actions == 0 && len(f.Clicks) == 0 && f.Pick == 0
}

// Clear resets the frame, keeping the click buffer for reuse.
func (f *InputFrame) Clear() {
	f.Actions = 0
	f.Clicks = f.Clicks[:0]
	f.Pick = 0
}
