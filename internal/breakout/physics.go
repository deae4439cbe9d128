package breakout

import (
	"math"

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

// Ball is the moving ball. Position is its center.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() core.Rect {
	return core.Around(b.X, b.Y, b.Radius, b.Radius)
}

// Paddle is the player's paddle. X, Y is its top-left corner.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Outcome reports what happened during one physics step.
type Outcome struct {
	HitBlock  int  // Index of the block hidden this step, -1 if none
	HitPaddle bool // Ball bounced off the paddle
	Cleared   bool // The hidden block was the last visible one
	BallLost  bool // Ball passed the bottom edge
}

// MovePaddle moves the paddle by its speed for each held direction and keeps
// it within [minX, maxX] (right edge included).
func MovePaddle(p *Paddle, left, right bool, minX, maxX float64) {
	if left {
		p.X -= p.Speed
	}
	if right {
		p.X += p.Speed
	}
	p.X = max(minX, min(p.X, maxX-p.Width))
}

// Advance moves the ball one tick and resolves collisions in order: walls,
// paddle, then at most one block. bounds is the play field; the bottom edge
// does not reflect. maxDX is the horizontal speed given by a hit at the very
// edge of the paddle.
func Advance(ball *Ball, paddle *Paddle, field *BlockField, bounds core.Rect, maxDX float64) Outcome {
	out := Outcome{HitBlock: -1}

	ball.X += ball.DX
	ball.Y += ball.DY

	// Walls. The velocity sign is forced away from the wall so a ball that
	// overshot by more than one step cannot stick.
	if ball.X <= bounds.X+ball.Radius {
		ball.DX = math.Abs(ball.DX)
	} else if ball.X >= bounds.Right()-ball.Radius {
		ball.DX = -math.Abs(ball.DX)
	}
	if ball.Y <= bounds.Y+ball.Radius {
		ball.DY = math.Abs(ball.DY)
	}

	// Paddle.
	if ball.Y+ball.Radius >= paddle.Y && ball.Y <= paddle.Y+paddle.Height &&
		ball.X >= paddle.X && ball.X <= paddle.X+paddle.Width {
		ball.DY = -math.Abs(ball.DY)
		half := paddle.Width / 2
		if half > 0 {
			ball.DX = (ball.X - paddle.CenterX()) / half * maxDX
		}
		out.HitPaddle = true
	}

	// Blocks: first overlap in storage order only.
	if field != nil {
		if i := field.FirstOverlap(ball.Bounds()); i >= 0 {
			b := field.Block(i).Bounds
			cx, cy := b.Center()
			dx := math.Abs(ball.X - cx)
			dy := math.Abs(ball.Y - cy)
			if dx*b.H > dy*b.W {
				ball.DX = -ball.DX
			} else {
				ball.DY = -ball.DY
			}
			field.Hide(i)
			out.HitBlock = i
			out.Cleared = field.AllCleared()
		}
	}

	if ball.Y >= bounds.Bottom() {
		out.BallLost = true
	}
	return out
}
