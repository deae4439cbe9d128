package breakout

import (
	"math"
)

// Snapshot is the complete simulation state, used to check determinism.
type Snapshot struct {
	Tick    uint64
	State   State
	TopicID string
	Rounds  int
	Correct int

	RoundTicks     int
	PaddleX        float64
	BallX, BallY   float64
	BallDX, BallDY float64
	Visible        []bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		State:   g.state,
		Rounds:  g.rounds,
		Correct: g.wins,
	}
	if r := g.round; r != nil {
		snap.TopicID = r.Topic.ID
		snap.RoundTicks = r.Ticks
		snap.PaddleX = r.Paddle.X
		snap.BallX, snap.BallY = r.Ball.X, r.Ball.Y
		snap.BallDX, snap.BallDY = r.Ball.DX, r.Ball.DY
		snap.Visible = make([]bool, r.Field.Len())
		for i, b := range r.Field.blocks {
			snap.Visible[i] = b.Visible
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rounds)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Correct)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoundTicks) //#nosec G115 -- hash computation
	for _, c := range snap.TopicID {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallDX, snap.BallDY} {
		h = h*31 + math.Float64bits(f)
	}
	for _, v := range snap.Visible {
		h *= 31
		if v {
			h++
		}
	}
	return h
}
