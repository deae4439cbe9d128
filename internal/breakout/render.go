package breakout

import (
	"image"
	"math"

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

// HalfBlock is drawn in every playing-field cell: its foreground is the upper
// half of the cell and its background the lower half.
const HalfBlock = '▀'

// Minimum screen size in cells.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// CellToField maps the center of cell (col, row) on a cols×rows screen to
// field coordinates.
func CellToField(col, row, cols, rows int, fieldW, fieldH float64) (x, y float64) {
	x = (float64(col) + 0.5) * fieldW / float64(cols)
	y = (float64(row) + 0.5) * fieldH / float64(rows)
	return x, y
}

// fieldToCell maps a field coordinate to a cell index along one axis.
func fieldToCell(v, fieldSize float64, cells int) int {
	return int(v / fieldSize * float64(cells))
}

// Render draws the current screen into dst, scaling the field to its size.
func (g *Game) Render(dst *core.Screen) {
	dst.Fill(core.ColorBlack)
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorWhite)
		return
	}

	if g.state == StatePlaying {
		g.renderField(dst)
		return
	}
	g.renderMenu(dst)
}

// renderField samples the field twice per cell vertically and draws half blocks.
func (g *Game) renderField(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	fw, fh := g.cfg.Field.Width, g.cfg.Field.Height
	sub := make([][]core.Color, 2*h)
	for y := range sub {
		sub[y] = make([]core.Color, w)
		for x := range sub[y] {
			sub[y][x] = g.sample((float64(x)+0.5)*fw/float64(w), (float64(y)+0.5)*fh/float64(2*h))
		}
	}

	// The ball can fall between sample points at low resolutions.
	ball := g.round.Ball
	bx := fieldToCell(ball.X, fw, w)
	by := fieldToCell(ball.Y, fh, 2*h)
	if bx >= 0 && bx < w && by >= 0 && by < 2*h {
		sub[by][bx] = core.ColorOrange
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetCell(x, y, core.Cell{Rune: HalfBlock, FG: sub[2*y][x], BG: sub[2*y+1][x]})
		}
	}
}

// sample returns the color at a field point, topmost layer first:
// ball, paddle, visible blocks, topic image, background.
func (g *Game) sample(x, y float64) core.Color {
	r := g.round
	dx, dy := x-r.Ball.X, y-r.Ball.Y
	if dx*dx+dy*dy <= r.Ball.Radius*r.Ball.Radius {
		return core.ColorOrange
	}
	if r.Paddle.Bounds().Contains(x, y) {
		return core.ColorWhite
	}
	for _, b := range r.Field.blocks {
		if b.Visible && b.Bounds.Contains(x, y) {
			return b.Color
		}
	}
	if r.Image != nil && r.Area.Contains(x, y) {
		return imageColor(r.Image, x-r.Area.X, y-r.Area.Y)
	}
	return core.ColorBlack
}

func imageColor(img image.Image, x, y float64) core.Color {
	b := img.Bounds()
	px := min(max(b.Min.X+int(x), b.Min.X), b.Max.X-1)
	py := min(max(b.Min.Y+int(y), b.Min.Y), b.Max.Y-1)
	return core.FromColor(img.At(px, py))
}

// renderMenu draws buttons and labels of a non-playing screen.
func (g *Game) renderMenu(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	fw, fh := g.cfg.Field.Width, g.cfg.Field.Height

	for _, l := range g.Labels() {
		dst.DrawTextCentered(fieldToCell(l.Y, fh, h), l.Text, l.Color)
	}

	for _, b := range g.Buttons() {
		// Cover exactly the cells whose centers hit the button, so clicks
		// mapped with CellToField agree with what is drawn.
		x0 := firstCell(b.Bounds.X, fw, w)
		x1 := firstCell(b.Bounds.Right(), fw, w)
		y0 := firstCell(b.Bounds.Y, fh, h)
		y1 := firstCell(b.Bounds.Bottom(), fh, h)
		bw, bh := x1-x0, y1-y0
		if bw <= 0 || bh <= 0 {
			continue
		}
		dst.FillRect(x0, y0, bw, bh, b.Color)

		text := []rune(b.Label)
		if len(text) > bw {
			text = text[:bw]
		}
		tx := x0 + (bw-len(text))/2
		ty := y0 + (bh-1)/2
		dst.DrawText(tx, ty, string(text), core.ColorWhite)
	}
}

// firstCell returns the first cell whose center lies at or after field
// coordinate v.
func firstCell(v, fieldSize float64, cells int) int {
	return int(math.Ceil(v/fieldSize*float64(cells) - 0.5))
}
