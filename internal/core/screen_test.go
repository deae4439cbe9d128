package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.Repeat("        \n", 2)+"        " {
		t.Errorf("String() = %q", got)
	}
	if c := s.GetCell(7, 2); c != blankCell {
		t.Errorf("corner cell = %+v", c)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 4)
	red := Cell{Rune: 'x', BG: ColorRed}
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetCell(p[0], p[1], red)
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], c)
		}
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds write reached the grid")
	}
}

func TestScreenFillAndRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.Fill(ColorBlack)
	s.FillRect(1, 1, 2, 2, ColorBlue)

	tests := []struct {
		x, y int
		bg   Color
	}{
		{0, 0, ColorBlack},
		{1, 1, ColorBlue},
		{2, 2, ColorBlue},
		{3, 2, ColorBlack},
		{1, 3, ColorBlack},
	}
	for _, tt := range tests {
		if got := s.GetCell(tt.x, tt.y).BG; got != tt.bg {
			t.Errorf("BG at (%d, %d) = %s, want %s", tt.x, tt.y, got.Hex(), tt.bg.Hex())
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.FillRect(0, 0, 10, 1, ColorBlue)
	s.DrawText(7, 0, "Quiz", ColorWhite)

	if got := strings.Split(s.String(), "\n")[0]; got != "       Qui" {
		t.Errorf("row 0 = %q, want clipped text", got)
	}
	if c := s.GetCell(8, 0); c.FG != ColorWhite || c.BG != ColorBlue {
		t.Errorf("cell = %+v, want white on blue", c)
	}

	s.DrawTextCentered(1, "ok", ColorWhite)
	if s.GetCell(4, 1).Rune != 'o' || s.GetCell(5, 1).Rune != 'k' {
		t.Errorf("centered row = %q", strings.Split(s.String(), "\n")[1])
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill(ColorRed)
	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(3, 1); c != blankCell {
		t.Errorf("resized cell = %+v, want blank", c)
	}

	s.Resize(-3, 5)
	if s.Width() != 0 || s.String() != "\n\n\n\n" {
		t.Errorf("negative width: %dx%d %q", s.Width(), s.Height(), s.String())
	}
}
