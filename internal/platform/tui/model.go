// Package tui runs the game in a terminal with Bubble Tea, locally or for
// remote players over SSH.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quiz-breakout/internal/breakout"
	"github.com/vovakirdan/quiz-breakout/internal/core"
)

// Options configure a game model.
type Options struct {
	Player        string             // Name stored with each finished round
	TickRate      int                // Simulation ticks per second
	Width, Height int                // Initial terminal size
	Recorder      breakout.Recorder  // Optional round history
	Logger        *log.Logger        // Optional; discards when nil
	Renderer      *lipgloss.Renderer // Optional; the default renderer when nil
	ScreenshotDir string             // Where ctrl+s writes screenshots; disabled when empty
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	opts     Options
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	tick     uint64
	hold     uint64 // Ticks a direction stays held after a key press
	leftTo   uint64
	rightTo  uint64
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *breakout.Game, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	h := help.New()
	h.Width = opts.Width

	// Terminals repeat a held key roughly every 30-50ms.
	hold := uint64(max(opts.TickRate/6, 1)) //#nosec G115 -- positive

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Width, fieldRows(opts.Height)),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
		hold:   hold,
	}
}

// fieldRows is the number of rows left for the game above the help line.
func fieldRows(height int) int {
	return max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.opts.Width, m.opts.Height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, fieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.apply(msg, &m.input) {
	case keyForceQuit:
		m.quitting = true
		return m, tea.Quit
	case keyScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
	case keyHelp:
		m.help.ShowAll = !m.help.ShowAll
	case keyLeft:
		m.leftTo = m.tick + m.hold
		m.rightTo = 0
	case keyRight:
		m.rightTo = m.tick + m.hold
		m.leftTo = 0
	}
	return m, nil
}

// handleMouse turns left clicks into field coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	w, h := m.screen.Width(), m.screen.Height()
	if msg.X < 0 || msg.X >= w || msg.Y < 0 || msg.Y >= h {
		return m, nil
	}
	cfg := m.game.Config()
	x, y := breakout.CellToField(msg.X, msg.Y, w, h, cfg.Field.Width, cfg.Field.Height)
	m.input.Click(x, y)
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	if m.tick <= m.leftTo {
		m.input.Set(core.ActionLeft)
	}
	if m.tick <= m.rightTo {
		m.input.Set(core.ActionRight)
	}

	res := m.game.Step(m.input)
	m.input.Clear()

	if res.Summary != nil {
		m.record(*res.Summary)
	}
	if res.To == breakout.StateExited {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.TickRate)
}

// record stores a finished round. Failures are logged and the game goes on.
func (m Model) record(s breakout.RoundSummary) {
	m.opts.Logger.Info("round finished",
		"player", m.opts.Player,
		"topic", s.TopicID,
		"outcome", s.Outcome,
		"correct", s.Correct,
	)
	if m.opts.Recorder == nil {
		return
	}
	if err := m.opts.Recorder.RecordRound(m.opts.Player, s); err != nil {
		m.opts.Logger.Warn("could not record round", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.opts.ScreenshotDir == "" {
		return "", fmt.Errorf("screenshots are disabled")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("quizbreak_%s_%s.txt", m.game.State(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// Game returns the game driven by the model.
func (m Model) Game() *breakout.Game {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	m.screen.Resize(m.opts.Width, max(m.opts.Height-strings.Count(helpView, "\n")-1, 1))
	m.game.Render(m.screen)

	hint := m.renderer().NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.opts.Renderer, m.screen) + "\n" + hint.Render(helpView)
}

func (m Model) renderer() *lipgloss.Renderer {
	if m.opts.Renderer != nil {
		return m.opts.Renderer
	}
	return lipgloss.DefaultRenderer()
}

// Run starts the Bubble Tea program for a local game.
func Run(game *breakout.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select buttons
	)

	_, err := p.Run()
	return err
}

// TickMsg advances the simulation by one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at tickRate per second.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(tickRate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
