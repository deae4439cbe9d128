package breakout

import "github.com/vovakirdan/quiz-breakout/internal/core"

// Block is one destructible cell covering part of the topic image.
type Block struct {
	Bounds  core.Rect
	Color   core.Color
	Visible bool
}

// BlockField is the grid of blocks for one round, in row-major order.
type BlockField struct {
	blocks    []Block
	remaining int
}

// NewBlockField tiles area with rows×cols blocks. Cell sizes are floored to
// whole units, so a sliver of the area may stay uncovered. Each block gets a
// uniformly random palette color; an empty palette leaves blocks white.
func NewBlockField(rows, cols int, area core.Rect, palette []core.Color, rng core.Rand) *BlockField {
	rows = max(rows, 0)
	cols = max(cols, 0)
	f := &BlockField{}
	if rows == 0 || cols == 0 {
		return f
	}

	cw, ch := area.Tile(rows, cols)

	f.blocks = make([]Block, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			color := core.ColorWhite
			if len(palette) > 0 {
				color = palette[rng.Intn(len(palette))]
			}
			f.blocks = append(f.blocks, Block{
				Bounds:  core.NewRect(area.X+float64(c)*cw, area.Y+float64(r)*ch, cw, ch),
				Color:   color,
				Visible: true,
			})
		}
	}
	f.remaining = len(f.blocks)
	return f
}

// Len returns the total number of blocks, visible or not.
func (f *BlockField) Len() int { return len(f.blocks) }

// Remaining returns the number of visible blocks.
func (f *BlockField) Remaining() int { return f.remaining }

// AllCleared reports whether no block is visible.
func (f *BlockField) AllCleared() bool { return f.remaining == 0 }

// Block returns the block at index i in storage order.
func (f *BlockField) Block(i int) Block { return f.blocks[i] }

// Blocks returns a copy of all blocks in storage order.
func (f *BlockField) Blocks() []Block {
	out := make([]Block, len(f.blocks))
	copy(out, f.blocks)
	return out
}

// Hide marks block i invisible. Hiding an already hidden block is a no-op.
func (f *BlockField) Hide(i int) {
	if i < 0 || i >= len(f.blocks) || !f.blocks[i].Visible {
		return
	}
	f.blocks[i].Visible = false
	f.remaining--
}

// FirstOverlap returns the index of the first visible block, in storage
// order, whose bounds strictly overlap r, or -1.
func (f *BlockField) FirstOverlap(r core.Rect) int {
	for i := range f.blocks {
		if f.blocks[i].Visible && f.blocks[i].Bounds.Overlaps(r) {
			return i
		}
	}
	return -1
}
