// Package desktop runs Quiz Breakout in an ebiten window at field resolution.
package desktop

import (
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/vovakirdan/quiz-breakout/internal/assets"
	"github.com/vovakirdan/quiz-breakout/internal/breakout"
	"github.com/vovakirdan/quiz-breakout/internal/core"
)

// Font sizes in pixels when a TrueType font is configured.
const (
	fontSize      = 24
	largeFontSize = 36
)

// Options configure the desktop frontend.
type Options struct {
	Player   string            // Name stored with each finished round
	TickRate int               // Simulation ticks per second
	Recorder breakout.Recorder // Optional round history
	Logger   *log.Logger       // Optional; discards when nil
	Settings *SettingsStore    // Optional; in-memory defaults when nil
	FontPath string            // TrueType/OpenType font; built-in bitmap font when empty
}

// Game adapts a breakout.Game to ebiten.Game.
type Game struct {
	game     *breakout.Game
	opts     Options
	input    InputSource
	frame    core.InputFrame
	settings *SettingsStore

	face       text.Face
	largeFace  text.Face
	scale      float64 // Glyph scale for the normal face
	largeScale float64

	roundImage  *ebiten.Image
	imageSource image.Image

	setFullscreen func(bool)
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps game for ebiten.
func NewGame(game *breakout.Game, opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = game.Config().Gameplay.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Settings == nil {
		opts.Settings = NewSettingsStore(nil, opts.Logger)
	}

	g := &Game{
		game:          game,
		opts:          opts,
		input:         ebitenInput{},
		frame:         core.NewInputFrame(),
		settings:      opts.Settings,
		setFullscreen: ebiten.SetFullscreen,
	}
	g.loadFaces()
	return g
}

// loadFaces prepares the text faces. The bitmap fallback is drawn scaled up.
func (g *Game) loadFaces() {
	var normal, large font.Face
	if g.opts.FontPath == "" {
		normal, large = assets.DefaultFace(), assets.DefaultFace()
		g.scale, g.largeScale = 2, 3
	} else {
		normal = assets.LoadFace(g.opts.FontPath, fontSize, g.opts.Logger)
		large = assets.LoadFace(g.opts.FontPath, largeFontSize, g.opts.Logger)
		g.scale, g.largeScale = 1, 1
	}
	g.face = text.NewGoXFace(normal)
	g.largeFace = text.NewGoXFace(large)
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	readInput(g.input, &g.frame)
	if g.input.JustPressed(ebiten.KeyF11) {
		g.toggleFullscreen()
	}

	res := g.game.Step(g.frame)
	if res.Summary != nil {
		g.record(*res.Summary)
	}
	if res.To == breakout.StateExited {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) toggleFullscreen() {
	s := g.settings.Get()
	s.Fullscreen = !s.Fullscreen
	g.setFullscreen(s.Fullscreen)
	if err := g.settings.Save(s); err != nil {
		g.opts.Logger.Warn("could not save settings", "error", err)
	}
}

// record stores a finished round. Failures are logged and the game goes on.
func (g *Game) record(s breakout.RoundSummary) {
	g.opts.Logger.Info("round finished",
		"player", g.opts.Player,
		"topic", s.TopicID,
		"outcome", s.Outcome,
		"correct", s.Correct,
	)
	if g.opts.Recorder == nil {
		return
	}
	if err := g.opts.Recorder.RecordRound(g.opts.Player, s); err != nil {
		g.opts.Logger.Warn("could not record round", "error", err)
	}
}

// Layout keeps the logical screen at field size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.game.Config()
	return int(cfg.Field.Width), int(cfg.Field.Height)
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorBlack)
	if g.game.State() == breakout.StatePlaying {
		g.drawField(screen)
		return
	}
	g.drawMenu(screen)
}

func (g *Game) drawField(screen *ebiten.Image) {
	r := g.game.Round()
	if img := g.imageFor(r); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(r.Area.X, r.Area.Y)
		screen.DrawImage(img, op)
	}
	for _, b := range r.Field.Blocks() {
		if b.Visible {
			fillRect(screen, b.Bounds, b.Color)
		}
	}
	fillRect(screen, r.Paddle.Bounds(), core.ColorWhite)
	vector.DrawFilledCircle(screen, float32(r.Ball.X), float32(r.Ball.Y), float32(r.Ball.Radius), core.ColorOrange, true)
}

// imageFor returns the GPU copy of the round image, uploading it once per round.
func (g *Game) imageFor(r *breakout.Round) *ebiten.Image {
	if r.Image == nil {
		return nil
	}
	if g.roundImage == nil || g.imageSource != r.Image {
		if g.roundImage != nil {
			g.roundImage.Deallocate()
		}
		g.roundImage = ebiten.NewImageFromImage(r.Image)
		g.imageSource = r.Image
	}
	return g.roundImage
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	width := g.game.Config().Field.Width
	for _, l := range g.game.Labels() {
		face, scale := g.face, g.scale
		if l.Large {
			face, scale = g.largeFace, g.largeScale
		}
		w, _ := text.Measure(l.Text, face, 0)
		g.drawText(screen, l.Text, face, scale, (width-w*scale)/2, l.Y, l.Color)
	}
	for _, b := range g.game.Buttons() {
		fillRect(screen, b.Bounds, b.Color)
		w, h := text.Measure(b.Label, g.face, 0)
		x := b.Bounds.X + (b.Bounds.W-w*g.scale)/2
		y := b.Bounds.Y + (b.Bounds.H-h*g.scale)/2
		g.drawText(screen, b.Label, g.face, g.scale, x, y, core.ColorWhite)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, face text.Face, scale, x, y float64, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func fillRect(dst *ebiten.Image, r core.Rect, c core.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Run opens the window and plays until the player quits or closes it.
func Run(game *breakout.Game, opts Options) error {
	g := NewGame(game, opts)
	cfg := game.Config()
	s := g.settings.Get()
	s.LastCatalog = game.Catalog().Name()
	if err := g.settings.Save(s); err != nil {
		g.opts.Logger.Warn("could not save settings", "error", err)
	}

	ebiten.SetWindowSize(int(cfg.Field.Width*s.WindowScale), int(cfg.Field.Height*s.WindowScale))
	ebiten.SetWindowTitle(fmt.Sprintf("%s Quiz Breakout", game.Catalog().Name()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(s.Fullscreen)
	ebiten.SetTPS(g.opts.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
