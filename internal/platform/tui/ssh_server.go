package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/quiz-breakout/internal/breakout"
	"github.com/vovakirdan/quiz-breakout/internal/config"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // Generated on first start; ~/.quizbreak/host_key when empty
	IdleTimeout time.Duration // Idle connections are closed after this long
	TickRate    int           // Simulation rate of every session
	MaxSessions int           // Concurrent games; 0 means unlimited
}

// DefaultSSHServerConfig returns the settings used by `quizbreak serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		MaxSessions: 64,
	}
}

// GameFactory creates an independent game for a new session.
type GameFactory func() (*breakout.Game, error)

// SSHServer gives every SSH session its own game. Only the recorder is
// shared between sessions.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	newGame  GameFactory
	recorder breakout.Recorder
	logger   *log.Logger
	active   atomic.Int64
}

// NewSSHServer creates a new SSH server. recorder may be nil.
func NewSSHServer(cfg SSHServerConfig, newGame GameFactory, recorder breakout.Recorder, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if newGame == nil {
		return nil, errors.New("tui: SSH server needs a game factory")
	}

	keyPath := cfg.HostKeyPath
	if keyPath == "" {
		if keyPath = config.UserPath("host_key"); keyPath == "" {
			return nil, errors.New("tui: no home directory for the host key; set a host key path")
		}
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: host key directory: %w", err)
	}

	srv := &SSHServer{
		config:   cfg,
		newGame:  newGame,
		recorder: recorder,
		logger:   logger,
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(srv.middleware(bubbletea.Middleware(srv.startGame))...),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

// middleware returns the session chain around game. wish runs it last to
// first: sessions are counted and logged, sessions without a terminal are
// refused, then the game starts.
func (s *SSHServer) middleware(game wish.Middleware) []wish.Middleware {
	return []wish.Middleware{game, activeterm.Middleware(), s.sessionMiddleware}
}

// startGame builds the model for one session.
func (s *SSHServer) startGame(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	game, err := s.newGame()
	if err != nil {
		s.logger.Error("cannot create game", "user", sess.User(), "error", err)
		wish.Fatalln(sess, "cannot start game:", err)
		return nil, nil
	}

	pty, _, _ := sess.Pty()
	model := NewModel(game, Options{
		Player:   sess.User(),
		TickRate: s.config.TickRate,
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
		Recorder: s.recorder,
		Logger:   s.logger.With("user", sess.User()),
		Renderer: bubbletea.MakeRenderer(sess),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// sessionMiddleware enforces MaxSessions and logs each session's lifetime.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		remote := sess.RemoteAddr().String()
		if limit := s.config.MaxSessions; limit > 0 && n > int64(limit) {
			s.logger.Warn("session refused: server full", "user", sess.User(), "remote", remote)
			wish.Fatalln(sess, "quizbreak is full, try again later")
			return
		}

		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", n)
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", remote, "duration", time.Since(start).Round(time.Second))
	}
}

// Sessions returns the number of connected sessions.
func (s *SSHServer) Sessions() int {
	return int(s.active.Load())
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: SSH server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "sessions", s.Sessions())
	return s.Shutdown()
}

// Shutdown stops accepting sessions and waits up to 10s for open ones.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
