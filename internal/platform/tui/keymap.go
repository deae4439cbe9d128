package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quiz-breakout/internal/core"
	"github.com/vovakirdan/quiz-breakout/internal/quiz"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Answers    [quiz.MaxCandidates]key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Answers[0], k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		k.Answers[:],
		{k.Confirm, k.Quit, k.ForceQuit},
		{k.Screenshot, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	k := KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start/replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit now"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
	digits := []string{"1", "2", "3", "4"}
	for i := range k.Answers {
		k.Answers[i] = key.NewBinding(
			key.WithKeys(digits[i]),
			key.WithHelp(digits[i], "answer "+digits[i]),
		)
	}
	k.Answers[0].SetHelp("1-4", "answer")
	return k
}

// keyResult is what a key press means for the model.
type keyResult int

const (
	keyNone keyResult = iota
	keyLeft
	keyRight
	keyForceQuit
	keyScreenshot
	keyHelp
)

// apply records a key press into frame. Held directions are reported
// separately because terminals only send presses.
func (k KeyMap) apply(msg tea.KeyMsg, frame *core.InputFrame) keyResult {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return keyForceQuit
	case key.Matches(msg, k.Screenshot):
		return keyScreenshot
	case key.Matches(msg, k.Help):
		return keyHelp
	case key.Matches(msg, k.Left):
		return keyLeft
	case key.Matches(msg, k.Right):
		return keyRight
	case key.Matches(msg, k.Confirm):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
	default:
		for i, b := range k.Answers {
			if key.Matches(msg, b) {
				frame.Pick = i + 1
				break
			}
		}
	}
	return keyNone
}
