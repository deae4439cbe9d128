package breakout

import (
	"testing"

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

var testBounds = core.NewRect(0, 0, 800, 600)

// farPaddle sits in the bottom corner, out of the way of wall tests.
func farPaddle() *Paddle {
	return &Paddle{X: 700, Y: 550, Width: 100, Height: 20, Speed: 8}
}

func TestAdvanceWallReflection(t *testing.T) {
	tests := []struct {
		name           string
		ball           Ball
		wantDX, wantDY float64
	}{
		{"left wall", Ball{X: 12, Y: 300, DX: -3, DY: 3, Radius: 10}, 3, 3},
		{"right wall", Ball{X: 788, Y: 300, DX: 3, DY: -3, Radius: 10}, -3, -3},
		{"top wall", Ball{X: 400, Y: 12, DX: 3, DY: -3, Radius: 10}, 3, 3},
		{"open field", Ball{X: 400, Y: 300, DX: 3, DY: -3, Radius: 10}, 3, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := tt.ball
			out := Advance(&ball, farPaddle(), nil, testBounds, 3)
			if ball.DX != tt.wantDX || ball.DY != tt.wantDY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", ball.DX, ball.DY, tt.wantDX, tt.wantDY)
			}
			if out.BallLost || out.HitPaddle || out.HitBlock != -1 {
				t.Errorf("unexpected outcome %+v", out)
			}
		})
	}
}

func TestAdvanceMovesBall(t *testing.T) {
	ball := Ball{X: 400, Y: 300, DX: 3, DY: -3, Radius: 10}
	Advance(&ball, farPaddle(), nil, testBounds, 3)
	if ball.X != 403 || ball.Y != 297 {
		t.Errorf("ball at (%v, %v), expected (403, 297)", ball.X, ball.Y)
	}
}

func TestAdvancePaddleReflection(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		dy     float64
		wantDX float64
	}{
		{"center", 400, 3, 0},
		{"left edge", 350, 3, -3},
		{"right edge", 450, 3, 3},
		{"quarter left", 375, 3, -1.5},
		{"moving up", 400, -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle := &Paddle{X: 350, Y: 550, Width: 100, Height: 20, Speed: 8}
			ball := Ball{X: tt.x, Y: 538, DX: 0, DY: tt.dy, Radius: 10}
			// Moving up starts inside the paddle band.
			if tt.dy < 0 {
				ball.Y = 548
			}

			out := Advance(&ball, paddle, nil, testBounds, 3)
			if !out.HitPaddle {
				t.Fatal("expected paddle hit")
			}
			if ball.DX != tt.wantDX {
				t.Errorf("dx = %v, expected %v", ball.DX, tt.wantDX)
			}
			if ball.DY >= 0 {
				t.Errorf("dy = %v, expected upward", ball.DY)
			}
		})
	}
}

func TestAdvancePaddleMiss(t *testing.T) {
	paddle := &Paddle{X: 350, Y: 550, Width: 100, Height: 20, Speed: 8}
	ball := Ball{X: 300, Y: 538, DX: 0, DY: 3, Radius: 10}
	out := Advance(&ball, paddle, nil, testBounds, 3)
	if out.HitPaddle || ball.DY != 3 {
		t.Errorf("ball beside the paddle should not bounce: %+v dy=%v", out, ball.DY)
	}
}

func TestAdvanceOneBlockPerTick(t *testing.T) {
	field := NewBlockField(1, 2, core.NewRect(0, 0, 100, 50), testPalette, core.NewSimpleRNG(1))
	// Ball straddles the shared edge of both blocks.
	ball := Ball{X: 50, Y: 25, Radius: 10}

	out := Advance(&ball, farPaddle(), field, testBounds, 3)
	if out.HitBlock != 0 {
		t.Fatalf("hit block %d, expected 0", out.HitBlock)
	}
	if field.Block(0).Visible {
		t.Error("first block in storage order should be hidden")
	}
	if !field.Block(1).Visible {
		t.Error("second block should stay visible this tick")
	}
	if out.Cleared {
		t.Error("field is not cleared yet")
	}

	out = Advance(&ball, farPaddle(), field, testBounds, 3)
	if out.HitBlock != 1 || !out.Cleared {
		t.Errorf("second tick outcome %+v, expected block 1 and cleared", out)
	}
}

func TestAdvanceBlockAxis(t *testing.T) {
	tests := []struct {
		name           string
		ball           Ball
		wantDX, wantDY float64
	}{
		// Block spans (100,100)-(150,150).
		{"from below", Ball{X: 125, Y: 162, DX: 1, DY: -3, Radius: 10}, 1, 3},
		{"from above", Ball{X: 125, Y: 88, DX: 1, DY: 3, Radius: 10}, 1, -3},
		{"from left", Ball{X: 88, Y: 125, DX: 3, DY: 1, Radius: 10}, -3, 1},
		{"from right", Ball{X: 162, Y: 125, DX: -3, DY: 1, Radius: 10}, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := NewBlockField(1, 1, core.NewRect(100, 100, 50, 50), testPalette, core.NewSimpleRNG(1))
			ball := tt.ball
			out := Advance(&ball, farPaddle(), field, testBounds, 3)
			if out.HitBlock != 0 || !out.Cleared {
				t.Fatalf("outcome %+v, expected block 0 cleared", out)
			}
			if ball.DX != tt.wantDX || ball.DY != tt.wantDY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", ball.DX, ball.DY, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestAdvanceBallLost(t *testing.T) {
	ball := Ball{X: 100, Y: 598, DX: 0, DY: 3, Radius: 10}
	out := Advance(&ball, farPaddle(), nil, testBounds, 3)
	if !out.BallLost {
		t.Error("ball past the bottom edge should be lost")
	}
	if ball.DY != 3 {
		t.Error("bottom edge should not reflect")
	}
}

func TestMovePaddle(t *testing.T) {
	tests := []struct {
		name        string
		x           float64
		left, right bool
		want        float64
	}{
		{"left", 350, true, false, 342},
		{"right", 350, false, true, 358},
		{"both", 350, true, true, 350},
		{"none", 350, false, false, 350},
		{"clamp left", 4, true, false, 0},
		{"clamp right", 696, false, true, 700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Paddle{X: tt.x, Y: 550, Width: 100, Height: 20, Speed: 8}
			MovePaddle(p, tt.left, tt.right, 0, 800)
			if p.X != tt.want {
				t.Errorf("paddle x = %v, expected %v", p.X, tt.want)
			}
		})
	}
}
