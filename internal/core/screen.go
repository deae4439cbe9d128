package core

import "strings"

// Cell is one character position of a Screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a grid of colored cells. The game renders into it and the
// terminal frontend turns it into styled text. Writes outside the grid are
// dropped; reads outside it return a blank cell.
type Screen struct {
	width, height int
	cells         []Cell // Row-major
}

// NewScreen returns a blank width×height screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions and blanks the screen. Negative sizes are
// treated as zero.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	if n := s.width * s.height; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Fill(ColorDefault)
}

// Fill blanks every cell with background bg.
func (s *Screen) Fill(bg Color) {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' ', BG: bg}
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// SetCell replaces the cell at (x, y).
func (s *Screen) SetCell(x, y int, c Cell) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = c
	}
}

// GetCell returns the cell at (x, y).
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// DrawText writes text from (x, y) rightwards in fg, keeping backgrounds.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	for _, r := range text {
		if i, ok := s.index(x, y); ok {
			s.cells[i].Rune = r
			s.cells[i].FG = fg
		}
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text, fg)
}

// FillRect blanks a block of cells with background bg.
func (s *Screen) FillRect(x, y, w, h int, bg Color) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.SetCell(cx, cy, Cell{Rune: ' ', BG: bg})
		}
	}
}

// String returns the runes without colors, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
