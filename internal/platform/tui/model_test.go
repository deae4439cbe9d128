package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quiz-breakout/internal/breakout"
	"github.com/vovakirdan/quiz-breakout/internal/config"
	"github.com/vovakirdan/quiz-breakout/internal/core"
	"github.com/vovakirdan/quiz-breakout/internal/quiz"
)

type fakeRecorder struct {
	players   []string
	summaries []breakout.RoundSummary
}

func (r *fakeRecorder) RecordRound(player string, s breakout.RoundSummary) error {
	r.players = append(r.players, player)
	r.summaries = append(r.summaries, s)
	return nil
}

func newTestModel(t *testing.T, opts Options) (Model, *fakeRecorder) {
	t.Helper()
	catalog, err := quiz.Open(quiz.DefaultCatalog)
	if err != nil {
		t.Fatal(err)
	}
	game, err := breakout.New(config.DefaultConfig(), catalog, nil, core.NewSimpleRNG(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	rec := &fakeRecorder{}
	opts.Recorder = rec
	opts.Width, opts.Height = 80, 25
	return NewModel(game, opts), rec
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg{})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartWithEnter(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := tick(t, m)

	if got := m.Game().State(); got != breakout.StatePlaying {
		t.Errorf("state = %s, expected playing", got)
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelStartWithClick(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	// On an 80x24 field the start button covers rows 14-15, columns 25-54.
	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 14, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = tick(t, m)
	if got := m.Game().State(); got != breakout.StatePlaying {
		t.Errorf("state after click = %s, expected playing", got)
	}
}

func TestModelIgnoresMouseRelease(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 14, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = tick(t, m)
	if got := m.Game().State(); got != breakout.StateTitle {
		t.Errorf("release should not click, state = %s", got)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = send(t, m, runes("q"))
	m, cmd := tick(t, m)
	if !isQuit(cmd) {
		t.Error("q on the title screen should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	m2, _ := newTestModel(t, Options{})
	if _, cmd := send(t, m2, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("ctrl+c should quit immediately")
	}
}

func TestModelHeldDirection(t *testing.T) {
	m, _ := newTestModel(t, Options{TickRate: 60})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 15; i++ {
		m, _ = tick(t, m)
	}

	// One press holds the direction for TickRate/6 = 10 ticks of 8 units.
	if got := m.Game().Round().Paddle.X; got != 270 {
		t.Errorf("paddle x = %v, expected 270", got)
	}
}

func TestModelRecordsRound(t *testing.T) {
	m, rec := newTestModel(t, Options{Player: "tester"})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)

	m.Game().Round().Ball = breakout.Ball{X: 100, Y: 598, DY: 3, Radius: 10}
	m, _ = tick(t, m)
	if got := m.Game().State(); got != breakout.StateQuiz {
		t.Fatalf("state = %s, expected quiz", got)
	}

	m, _ = send(t, m, runes("1"))
	m, _ = tick(t, m)
	if got := m.Game().State(); got != breakout.StateResult {
		t.Fatalf("state = %s, expected result", got)
	}

	if len(rec.summaries) != 1 {
		t.Fatalf("recorded %d rounds, expected 1", len(rec.summaries))
	}
	if rec.players[0] != "tester" {
		t.Errorf("player = %q", rec.players[0])
	}
	topic := m.Game().Round().Topic
	if s := rec.summaries[0]; s.TopicID != topic.ID || s.Chosen != topic.Candidates[0] {
		t.Errorf("summary = %+v", s)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, Options{ScreenshotDir: dir})
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "quizbreak_title_") {
		t.Fatalf("screenshot files = %v", entries)
	}
	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), breakout.TextStart) {
		t.Error("screenshot should contain the title screen")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	view := m.View()
	if !strings.Contains(view, breakout.TextStart) {
		t.Error("view should show the start button")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should show the key help")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 25 {
		t.Errorf("view has %d lines, expected 25", lines)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}
