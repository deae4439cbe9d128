package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

// InputSource reports raw key and pointer state for one frame.
type InputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	// Click returns the position of a left button press this frame,
	// in logical screen pixels.
	Click() (x, y int, ok bool)
}

// ebitenInput reads the live ebiten input state.
type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenInput) Click() (int, int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}
	quitKeys    = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
	answerKeys  = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}
)

func anyPressed(src InputSource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(src InputSource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.JustPressed(k) {
			return true
		}
	}
	return false
}

// readInput builds the input frame for one tick. Layout keeps the logical
// screen at field size, so cursor positions are already field coordinates.
func readInput(src InputSource, frame *core.InputFrame) {
	frame.Clear()
	if anyPressed(src, leftKeys) {
		frame.Set(core.ActionLeft)
	}
	if anyPressed(src, rightKeys) {
		frame.Set(core.ActionRight)
	}
	if anyJustPressed(src, confirmKeys) {
		frame.Set(core.ActionConfirm)
	}
	if anyJustPressed(src, quitKeys) {
		frame.Set(core.ActionQuit)
	}
	for i, k := range answerKeys {
		if src.JustPressed(k) {
			frame.Pick = i + 1
			break
		}
	}
	if x, y, ok := src.Click(); ok {
		frame.Click(float64(x), float64(y))
	}
}
