// Package breakout implements the quiz breakout game: a block field hiding a
// topic image, the ball and paddle physics, and the screen state machine.
package breakout

import (
	"image"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quiz-breakout/internal/assets"
	"github.com/vovakirdan/quiz-breakout/internal/config"
	"github.com/vovakirdan/quiz-breakout/internal/core"
	"github.com/vovakirdan/quiz-breakout/internal/quiz"
)

// State is the current screen of the game.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateQuiz
	StateResult
	StateGameOver
	StateExited // Player chose to quit; frontends stop on this state
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateQuiz:
		return "quiz"
	case StateResult:
		return "result"
	case StateGameOver:
		return "gameover"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// RoundOutcome is how the playing phase of a round ended.
type RoundOutcome string

const (
	OutcomeCleared RoundOutcome = "cleared" // All blocks hidden
	OutcomeMissed  RoundOutcome = "missed"  // Ball lost with blocks remaining
	OutcomeLost    RoundOutcome = "lost"    // Ball lost with no blocks remaining
)

// RoundSummary describes a finished round for history and logs.
type RoundSummary struct {
	Catalog    string
	TopicID    string
	Answer     string
	Outcome    RoundOutcome
	Chosen     string // Empty when no quiz was shown
	Correct    bool
	BlocksLeft int
	Ticks      int
}

// Recorder persists finished rounds. player identifies who played them.
type Recorder interface {
	RecordRound(player string, s RoundSummary) error
}

// Round is the state of one playing episode.
type Round struct {
	Topic   quiz.Topic
	Field   *BlockField
	Ball    Ball
	Paddle  Paddle
	Area    core.Rect   // Image area covered by the block field
	Image   image.Image // Topic image sized to Area, nil without a provider
	Ticks   int
	Outcome RoundOutcome
}

// StepResult reports the state change caused by one Step.
type StepResult struct {
	From, To State
	Summary  *RoundSummary // Set on the tick a round is resolved
}

// Changed reports whether the step moved to another state.
func (r StepResult) Changed() bool {
	return r.From != r.To
}

// Game is one player's game. It is not safe for concurrent use.
type Game struct {
	cfg     config.GameConfig
	palette []core.Color
	catalog *quiz.Catalog
	assets  assets.Provider
	rng     core.Rand
	logger  *log.Logger

	state   State
	round   *Round
	chosen  string
	correct bool
	tick    uint64
	rounds  int
	wins    int
}

// New creates a game on the title screen. provider may be nil, in which case
// rounds have no image. A nil rng uses a fixed seed; a nil logger discards.
func New(cfg config.GameConfig, catalog *quiz.Catalog, provider assets.Provider, rng core.Rand, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, quiz.ErrEmptyCatalog
	}
	palette, err := cfg.PaletteColors()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewSimpleRNG(1)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		cfg:     cfg,
		palette: palette,
		catalog: catalog,
		assets:  provider,
		rng:     rng,
		logger:  logger,
		state:   StateTitle,
	}, nil
}

// State returns the current screen.
func (g *Game) State() State { return g.state }

// Round returns the current round, nil before the first start.
func (g *Game) Round() *Round { return g.round }

// Config returns the game configuration.
func (g *Game) Config() config.GameConfig { return g.cfg }

// Catalog returns the quiz catalog.
func (g *Game) Catalog() *quiz.Catalog { return g.catalog }

// Tick returns the number of steps taken.
func (g *Game) Tick() uint64 { return g.tick }

// Stats returns the rounds answered and the correct answers this session.
func (g *Game) Stats() (rounds, correct int) { return g.rounds, g.wins }

// LastAnswer returns the most recent chosen answer and whether it was right.
func (g *Game) LastAnswer() (chosen string, correct bool) { return g.chosen, g.correct }

// Bounds returns the play field rectangle.
func (g *Game) Bounds() core.Rect {
	return core.NewRect(0, 0, g.cfg.Field.Width, g.cfg.Field.Height)
}

// Step advances the game by one tick. Input is applied before physics.
func (g *Game) Step(in core.InputFrame) StepResult {
	res := StepResult{From: g.state}
	g.tick++

	switch g.state {
	case StateTitle:
		if b, ok := g.activation(in); ok {
			switch b.ID {
			case ButtonStart:
				g.startRound()
			case ButtonExit:
				g.state = StateExited
			}
		}

	case StatePlaying:
		res.Summary = g.stepPlaying(in)

	case StateQuiz:
		if b, ok := g.activation(in); ok && b.ID == ButtonAnswer {
			res.Summary = g.answer(b.Label)
		}

	case StateResult, StateGameOver:
		if b, ok := g.activation(in); ok {
			switch b.ID {
			case ButtonReplay:
				g.startRound()
			case ButtonExit:
				g.state = StateExited
			}
		}
	}

	res.To = g.state
	if res.Changed() {
		g.logger.Debug("state change", "from", res.From, "to", res.To, "tick", g.tick)
	}
	return res
}

// activation resolves the button activated this tick. Clicks win over
// keyboard shortcuts; the first click on a button counts.
func (g *Game) activation(in core.InputFrame) (Button, bool) {
	for _, c := range in.Clicks {
		if b, ok := g.ButtonAt(c.X, c.Y); ok {
			return b, true
		}
	}
	for _, b := range g.Buttons() {
		switch b.ID {
		case ButtonStart, ButtonReplay:
			if in.Has(core.ActionConfirm) {
				return b, true
			}
		case ButtonExit:
			if in.Has(core.ActionQuit) {
				return b, true
			}
		case ButtonAnswer:
			if in.Pick == b.Answer+1 {
				return b, true
			}
		}
	}
	return Button{}, false
}

// startRound picks a topic and resets field, paddle and ball.
func (g *Game) startRound() {
	cfg := g.cfg
	topic := g.catalog.PickRandom(g.rng)
	area := cfg.ImageArea()

	paddle := Paddle{
		X:      cfg.Field.Width/2 - cfg.Paddle.Width/2,
		Y:      cfg.Field.Height - cfg.Paddle.BottomOffset,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
		Speed:  cfg.Paddle.Speed,
	}
	ball := Ball{
		X:      cfg.Field.Width / 2,
		Y:      paddle.Y - cfg.Ball.Radius - cfg.Ball.SpawnGap,
		DX:     cfg.Ball.SpeedX,
		DY:     cfg.Ball.SpeedY,
		Radius: cfg.Ball.Radius,
	}

	var img image.Image
	if g.assets != nil {
		img = g.assets.Load(topic.Image, topic.Answer, int(area.W), int(area.H))
	}

	g.round = &Round{
		Topic:  topic,
		Field:  NewBlockField(cfg.Blocks.Rows, cfg.Blocks.Cols, area, g.palette, g.rng),
		Ball:   ball,
		Paddle: paddle,
		Area:   area,
		Image:  img,
	}
	g.chosen = ""
	g.correct = false
	g.state = StatePlaying
	g.logger.Debug("round started", "catalog", g.catalog.Name(), "topic", topic.ID, "blocks", g.round.Field.Len())
}

// stepPlaying moves the paddle, advances the ball and decides whether the
// round goes to the quiz or ends the game. Clearing wins over a lost ball.
func (g *Game) stepPlaying(in core.InputFrame) *RoundSummary {
	r := g.round
	r.Ticks++

	MovePaddle(&r.Paddle, in.Has(core.ActionLeft), in.Has(core.ActionRight), 0, g.cfg.Field.Width)
	out := Advance(&r.Ball, &r.Paddle, r.Field, g.Bounds(), g.cfg.Ball.MaxDX)

	switch {
	case out.Cleared:
		r.Outcome = OutcomeCleared
		g.state = StateQuiz
	case out.BallLost && !r.Field.AllCleared():
		r.Outcome = OutcomeMissed
		g.state = StateQuiz
	case out.BallLost:
		r.Outcome = OutcomeLost
		g.state = StateGameOver
		return g.summary()
	}
	return nil
}

// answer resolves the quiz with the chosen candidate.
func (g *Game) answer(chosen string) *RoundSummary {
	g.chosen = chosen
	g.correct = quiz.CheckAnswer(g.round.Topic, chosen)
	g.rounds++
	if g.correct {
		g.wins++
	}
	g.state = StateResult
	g.logger.Info("quiz answered", "topic", g.round.Topic.ID, "chosen", chosen, "correct", g.correct)
	return g.summary()
}

func (g *Game) summary() *RoundSummary {
	r := g.round
	return &RoundSummary{
		Catalog:    g.catalog.Name(),
		TopicID:    r.Topic.ID,
		Answer:     r.Topic.Answer,
		Outcome:    r.Outcome,
		Chosen:     g.chosen,
		Correct:    g.correct,
		BlocksLeft: r.Field.Remaining(),
		Ticks:      r.Ticks,
	}
}
