package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.Fill(core.ColorBlack)
	s.DrawText(2, 1, "hello", core.ColorWhite)
	s.SetCell(0, 2, core.Cell{Rune: '▀', FG: core.ColorRed, BG: core.ColorBlue})

	out := RenderScreen(nil, s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[1], "hello") {
		t.Errorf("line 1 = %q, expected it to contain hello", lines[1])
	}
	if !strings.Contains(lines[2], "▀") {
		t.Errorf("line 2 = %q, expected the half block", lines[2])
	}
}
