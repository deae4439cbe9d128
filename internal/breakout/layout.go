package breakout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

// ButtonID identifies what a button does when activated.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonStart
	ButtonExit
	ButtonReplay
	ButtonAnswer
)

// Button is a clickable region of a menu screen, in field units.
type Button struct {
	ID     ButtonID
	Answer int // Candidate index for ButtonAnswer
	Label  string
	Bounds core.Rect
	Color  core.Color
}

// Label is a line of text on a menu screen. Y is the top of the line.
type Label struct {
	Text  string
	Y     float64
	Color core.Color
	Large bool
}

const (
	buttonWidth  = 300
	buttonHeight = 50
	answerTop    = 250
	answerStep   = 70

	// Answer buttons fit the longest candidate: glyphWidth field units per
	// rune plus answerPadding, kept answerInset away from the field edges.
	glyphWidth    = 14
	answerPadding = 60
	answerInset   = 20
)

// Button labels.
const (
	TextStart  = "Start game"
	TextReplay = "Play again"
	TextExit   = "Quit game"
)

func (g *Game) button(id ButtonID, label string, y float64, color core.Color) Button {
	return g.sizedButton(id, label, y, buttonWidth, color)
}

func (g *Game) sizedButton(id ButtonID, label string, y, width float64, color core.Color) Button {
	return Button{
		ID:     id,
		Label:  label,
		Bounds: core.NewRect(g.cfg.Field.Width/2-width/2, y, width, buttonHeight),
		Color:  color,
	}
}

// answerWidth is the shared width of the quiz buttons: wide enough for the
// longest candidate, never narrower than a menu button nor wider than the
// field allows.
func (g *Game) answerWidth(candidates []string) float64 {
	longest := 0
	for _, c := range candidates {
		longest = max(longest, utf8.RuneCountInString(c))
	}
	w := float64(longest*glyphWidth + answerPadding)
	return min(max(w, buttonWidth), g.cfg.Field.Width-2*answerInset)
}

// Buttons returns the buttons of the current screen. Playing has none.
func (g *Game) Buttons() []Button {
	h := g.cfg.Field.Height
	switch g.state {
	case StateTitle:
		return []Button{
			g.button(ButtonStart, TextStart, 350, core.ColorBlue),
			g.button(ButtonExit, TextExit, 420, core.ColorRed),
		}
	case StateQuiz:
		candidates := g.round.Topic.Candidates
		width := g.answerWidth(candidates)
		buttons := make([]Button, len(candidates))
		for i, c := range candidates {
			b := g.sizedButton(ButtonAnswer, c, float64(answerTop+i*answerStep), width, core.ColorBlue)
			b.Answer = i
			buttons[i] = b
		}
		return buttons
	case StateResult:
		return []Button{
			g.button(ButtonReplay, TextReplay, h/2, core.ColorBlue),
			g.button(ButtonExit, TextExit, h/2+70, core.ColorRed),
		}
	case StateGameOver:
		return []Button{
			g.button(ButtonReplay, TextReplay, h/2+20, core.ColorBlue),
			g.button(ButtonExit, TextExit, h/2+90, core.ColorRed),
		}
	default:
		return nil
	}
}

// ButtonAt returns the button of the current screen containing (x, y).
func (g *Game) ButtonAt(x, y float64) (Button, bool) {
	for _, b := range g.Buttons() {
		if b.Bounds.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Labels returns the text lines of the current screen.
func (g *Game) Labels() []Label {
	h := g.cfg.Field.Height
	switch g.state {
	case StateTitle:
		name := strings.ToUpper(g.catalog.Name())
		return []Label{
			{Text: name + " Quiz Breakout", Y: 100, Color: core.ColorOrange, Large: true},
			{Text: "Learn " + name + " services by breaking blocks", Y: 150, Color: core.ColorWhite},
			{Text: "Break the blocks to reveal the hidden service", Y: 200, Color: core.ColorWhite},
			{Text: "Move the paddle with the left and right keys", Y: 240, Color: core.ColorWhite},
			{Text: "Then name the service behind the blocks", Y: 280, Color: core.ColorWhite},
		}
	case StateQuiz:
		return []Label{
			{Text: g.round.Topic.Prompt, Y: 150, Color: core.ColorWhite},
		}
	case StateResult:
		verdict := Label{Text: "Congratulations!", Y: h/2 - 100, Color: core.ColorGreen, Large: true}
		if !g.correct {
			verdict = Label{Text: "Too bad!", Y: h/2 - 100, Color: core.ColorRed, Large: true}
		}
		return []Label{
			verdict,
			{Text: g.answerLine(), Y: h/2 - 55, Color: core.ColorWhite},
			{Text: fmt.Sprintf("Correct %d of %d", g.wins, g.rounds), Y: h/2 - 30, Color: core.ColorGray},
		}
	case StateGameOver:
		return []Label{
			{Text: "Game Over", Y: h/2 - 50, Color: core.ColorRed, Large: true},
		}
	default:
		return nil
	}
}

// answerLine names the right answer, and the player's pick when it was wrong.
func (g *Game) answerLine() string {
	line := "Answer: " + g.round.Topic.Answer
	if chosen, correct := g.LastAnswer(); !correct && chosen != "" {
		line += " (you chose " + chosen + ")"
	}
	return line
}
