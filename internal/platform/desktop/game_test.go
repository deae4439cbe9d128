package desktop

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/quiz-breakout/internal/breakout"
	"github.com/vovakirdan/quiz-breakout/internal/config"
	"github.com/vovakirdan/quiz-breakout/internal/core"
	"github.com/vovakirdan/quiz-breakout/internal/quiz"
)

// fakeInput is an InputSource driven by tests. Just-pressed keys and clicks
// last for one frame.
type fakeInput struct {
	held  map[ebiten.Key]bool
	just  map[ebiten.Key]bool
	click *core.Point
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeInput) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f *fakeInput) JustPressed(k ebiten.Key) bool { return f.just[k] }

func (f *fakeInput) Click() (int, int, bool) {
	if f.click == nil {
		return 0, 0, false
	}
	return int(f.click.X), int(f.click.Y), true
}

func (f *fakeInput) press(k ebiten.Key) { f.just[k] = true }

func (f *fakeInput) endFrame() {
	clear(f.just)
	f.click = nil
}

type fakeRecorder struct {
	summaries []breakout.RoundSummary
	err       error
}

func (r *fakeRecorder) RecordRound(_ string, s breakout.RoundSummary) error {
	r.summaries = append(r.summaries, s)
	return r.err
}

func newTestGame(t *testing.T, opts Options) (*Game, *fakeInput) {
	t.Helper()
	catalog, err := quiz.Open(quiz.DefaultCatalog)
	if err != nil {
		t.Fatal(err)
	}
	bg, err := breakout.New(config.DefaultConfig(), catalog, nil, core.NewSimpleRNG(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(bg, opts)
	in := newFakeInput()
	g.input = in
	g.setFullscreen = func(bool) {}
	return g, in
}

func update(t *testing.T, g *Game, in *fakeInput) error {
	t.Helper()
	err := g.Update()
	in.endFrame()
	return err
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name  string
		held  []ebiten.Key
		just  []ebiten.Key
		check func(core.InputFrame) bool
	}{
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, nil, func(f core.InputFrame) bool { return f.Has(core.ActionLeft) }},
		{"d is right", []ebiten.Key{ebiten.KeyD}, nil, func(f core.InputFrame) bool { return f.Has(core.ActionRight) }},
		{"space confirms", nil, []ebiten.Key{ebiten.KeySpace}, func(f core.InputFrame) bool { return f.Has(core.ActionConfirm) }},
		{"held enter does not repeat", []ebiten.Key{ebiten.KeyEnter}, nil, func(f core.InputFrame) bool { return !f.Has(core.ActionConfirm) }},
		{"escape quits", nil, []ebiten.Key{ebiten.KeyEscape}, func(f core.InputFrame) bool { return f.Has(core.ActionQuit) }},
		{"digit picks", nil, []ebiten.Key{ebiten.KeyDigit3}, func(f core.InputFrame) bool { return f.Pick == 3 }},
		{"nothing", nil, nil, func(f core.InputFrame) bool { return f.Empty() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newFakeInput()
			for _, k := range tt.held {
				in.held[k] = true
			}
			for _, k := range tt.just {
				in.just[k] = true
			}
			frame := core.NewInputFrame()
			frame.Set(core.ActionQuit) // stale input must be cleared
			readInput(in, &frame)
			if !tt.check(frame) {
				t.Errorf("unexpected frame %+v", frame)
			}
		})
	}
}

func TestReadInputClick(t *testing.T) {
	in := newFakeInput()
	in.click = &core.Point{X: 400, Y: 375}
	frame := core.NewInputFrame()
	readInput(in, &frame)
	if len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Point{X: 400, Y: 375}) {
		t.Fatalf("clicks = %v", frame.Clicks)
	}
}

func TestUpdateStartAndQuit(t *testing.T) {
	g, in := newTestGame(t, Options{})
	in.click = &core.Point{X: 400, Y: 375}
	if err := update(t, g, in); err != nil {
		t.Fatal(err)
	}
	if got := g.game.State(); got != breakout.StatePlaying {
		t.Fatalf("state = %s, expected playing", got)
	}

	g, in = newTestGame(t, Options{})
	in.press(ebiten.KeyQ)
	if err := update(t, g, in); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err = %v, expected termination", err)
	}
}

func TestUpdateRecordsRound(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	g, in := newTestGame(t, Options{Recorder: rec})
	in.press(ebiten.KeyEnter)
	if err := update(t, g, in); err != nil {
		t.Fatal(err)
	}

	g.game.Round().Ball = breakout.Ball{X: 100, Y: 598, DY: 3, Radius: 10}
	if err := update(t, g, in); err != nil {
		t.Fatal(err)
	}
	if got := g.game.State(); got != breakout.StateQuiz {
		t.Fatalf("state = %s, expected quiz", got)
	}

	in.press(ebiten.KeyDigit1)
	if err := update(t, g, in); err != nil {
		t.Fatalf("recording failure should not stop the game: %v", err)
	}
	if got := g.game.State(); got != breakout.StateResult {
		t.Fatalf("state = %s, expected result", got)
	}
	if len(rec.summaries) != 1 {
		t.Fatalf("recorded %d rounds, expected 1", len(rec.summaries))
	}
}

func TestUpdateTogglesFullscreen(t *testing.T) {
	g, in := newTestGame(t, Options{})
	var calls []bool
	g.setFullscreen = func(on bool) { calls = append(calls, on) }

	in.press(ebiten.KeyF11)
	if err := update(t, g, in); err != nil {
		t.Fatal(err)
	}
	in.press(ebiten.KeyF11)
	if err := update(t, g, in); err != nil {
		t.Fatal(err)
	}

	if len(calls) != 2 || !calls[0] || calls[1] {
		t.Fatalf("fullscreen calls = %v", calls)
	}
	if g.settings.Get().Fullscreen {
		t.Error("fullscreen should be off after two toggles")
	}
}

func TestLayoutIsFieldSize(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	w, h := g.Layout(1920, 1080)
	cfg := config.DefaultConfig()
	if w != int(cfg.Field.Width) || h != int(cfg.Field.Height) {
		t.Fatalf("layout = %dx%d", w, h)
	}
}
