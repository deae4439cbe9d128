package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quiz-breakout/internal/assets"
	"github.com/vovakirdan/quiz-breakout/internal/breakout"
	"github.com/vovakirdan/quiz-breakout/internal/config"
	"github.com/vovakirdan/quiz-breakout/internal/core"
	"github.com/vovakirdan/quiz-breakout/internal/quiz"
	"github.com/vovakirdan/quiz-breakout/internal/storage"
)

// env holds what every playing command needs.
type env struct {
	cfg      config.GameConfig
	catalog  *quiz.Catalog
	provider *assets.FileProvider
	store    *storage.Store
	logger   *log.Logger
	closers  []io.Closer
}

// newEnv opens the log. logDest is the log file, or empty for stderr.
func newEnv(logDest string) (*env, error) {
	logger, closer, err := newLogger(logDest)
	if err != nil {
		return nil, err
	}
	e := &env{logger: logger}
	if closer != nil {
		e.closers = append(e.closers, closer)
	}
	return e, nil
}

// load reads config, catalog, assets and history. catalogFallback is used
// when --catalog does not pick a catalog.
func (e *env) load(catalogFallback string) error {
	var err error
	e.cfg, err = loadGameConfig()
	if err != nil {
		return err
	}

	e.catalog, err = quiz.Resolve(catalogName(e.cfg, catalogFallback))
	if err != nil {
		return err
	}

	face := assets.DefaultFace()
	if flagFont != "" {
		face = assets.LoadFace(flagFont, 24, e.logger)
	}
	e.provider = assets.NewFileProvider(flagAssets, face, e.logger.With("component", "assets"))

	// History is optional; the game still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		e.logger.Warn("could not open history database", "path", flagDBPath, "error", err)
	} else {
		e.store = store
		e.closers = append(e.closers, store)
		if v, err := store.SchemaVersion(); err == nil {
			e.logger.Debug("history database open", "path", flagDBPath, "schema", v)
		}
	}

	e.logger.Info("ready",
		"catalog", e.catalog.Name(),
		"topics", e.catalog.Len(),
		"tick_rate", e.cfg.Gameplay.TickRate,
	)
	return nil
}

// Close releases the store and the log file.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
	e.closers = nil
}

// recorder returns the store as a Recorder, or nil without history.
func (e *env) recorder() breakout.Recorder {
	if e.store == nil {
		return nil
	}
	return e.store
}

// newGame creates a game on the title screen.
func (e *env) newGame(logger *log.Logger) (*breakout.Game, error) {
	return breakout.New(e.cfg, e.catalog, e.provider, newRNG(), logger)
}

// loadGameConfig applies --config, --difficulty and --fps.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Gameplay.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func catalogName(cfg config.GameConfig, fallback string) string {
	switch {
	case flagCatalog != "":
		return flagCatalog
	case fallback != "":
		return fallback
	case cfg.Gameplay.Catalog != "":
		return cfg.Gameplay.Catalog
	default:
		return quiz.DefaultCatalog
	}
}

func newRNG() core.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.NewSimpleRNG(seed)
}

// newLogger writes to dest, or to stderr when dest is empty.
func newLogger(dest string) (*log.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer
	if dest != "" {
		path, err := config.ExpandHome(dest)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "quizbreak",
	})
	return logger, closer, nil
}

// interactiveLog is the log destination of the frontends that own the screen.
func interactiveLog() string {
	if flagLog != "" {
		return flagLog
	}
	return config.UserPath("quizbreak.log")
}
