package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-breakout/internal/breakout"
	"github.com/vovakirdan/quiz-breakout/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Quiz Breakout SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Rounds are stored in the server's
history database under the SSH user name. Logs go to stderr unless --log is set.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.quizbreak/host_key

Examples:
  quizbreak serve                           # Listen on :23234 with auto-generated key
  quizbreak serve --ssh :2222               # Listen on port 2222
  quizbreak serve --host-key ./my_host_key  # Use specific host key
  quizbreak serve --catalog gcp             # Serve the GCP catalog

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", defaults.MaxSessions, "Maximum concurrent sessions (0 for no limit)")
}

func runServe(_ *cobra.Command, _ []string) error {
	e, err := newEnv(flagLog)
	if err != nil {
		return err
	}
	defer e.Close()
	if err := e.load(""); err != nil {
		return err
	}

	// Fail before listening if the config cannot make a game.
	if _, err := e.newGame(nil); err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    e.cfg.Gameplay.TickRate,
		MaxSessions: flagMaxSessions,
	}

	newGame := func() (*breakout.Game, error) {
		return e.newGame(e.logger.With("component", "game"))
	}
	server, err := tui.NewSSHServer(cfg, newGame, e.recorder(), e.logger)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting Quiz Breakout SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
