package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-breakout/internal/platform/desktop"
	"github.com/vovakirdan/quiz-breakout/internal/quiz"
	"github.com/vovakirdan/quiz-breakout/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Quiz Breakout in a desktop window at field resolution.

Controls:
  Left/Right, A/D  - Move the paddle
  Mouse            - Press the buttons
  Enter/Space      - Start, play again
  1-4              - Answer the quiz
  Q/Esc            - Quit from the menus
  F11              - Toggle fullscreen

The window remembers fullscreen and the last catalog played.

Examples:
  quizbreak window
  quizbreak window --assets ./assets --font ./fonts/DejaVuSans.ttf`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	e, err := newEnv(interactiveLog())
	if err != nil {
		return err
	}
	defer e.Close()

	settings := desktop.OpenSettings(desktop.AppName, e.logger.With("component", "settings"))
	last := settings.Get().LastCatalog
	if !quiz.Exists(last) {
		last = "" // Catalogs loaded from files are not remembered
	}
	if err := e.load(last); err != nil {
		return err
	}

	game, err := e.newGame(e.logger.With("player", storage.LocalPlayer))
	if err != nil {
		return err
	}

	return desktop.Run(game, desktop.Options{
		Player:   storage.LocalPlayer,
		TickRate: e.cfg.Gameplay.TickRate,
		Recorder: e.recorder(),
		Logger:   e.logger,
		Settings: settings,
		FontPath: flagFont,
	})
}
