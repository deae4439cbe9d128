package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quiz-breakout/internal/config"
	"github.com/vovakirdan/quiz-breakout/internal/platform/tui"
	"github.com/vovakirdan/quiz-breakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Quiz Breakout in the terminal.

Controls:
  Left/Right, A/D  - Move the paddle
  Enter/Space      - Start, play again
  1-4 or click     - Answer the quiz
  Q/Esc            - Quit from the menus
  Ctrl+S           - Save a text screenshot
  ?                - Toggle help

Examples:
  quizbreak play
  quizbreak play --catalog gcp
  quizbreak play --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	e, err := newEnv(interactiveLog())
	if err != nil {
		return err
	}
	defer e.Close()
	if err := e.load(""); err != nil {
		return err
	}

	game, err := e.newGame(e.logger.With("player", storage.LocalPlayer))
	if err != nil {
		return err
	}

	// Get terminal size before the program starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.Run(game, tui.Options{
		Player:        storage.LocalPlayer,
		TickRate:      e.cfg.Gameplay.TickRate,
		Width:         width,
		Height:        height,
		Recorder:      e.recorder(),
		Logger:        e.logger,
		ScreenshotDir: config.UserPath("screenshots"),
	})
}
