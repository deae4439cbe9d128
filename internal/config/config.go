// Package config provides YAML-based game configuration loading and
// difficulty presets for Quiz Breakout.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

// GameConfig contains all tuning for the game. Every distance is in field
// units; speeds are field units per tick.
type GameConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// FieldConfig defines the play field size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the field bottom to the paddle top
	Speed        float64 `yaml:"speed"`
}

// BallConfig defines the ball and its launch.
type BallConfig struct {
	Radius   float64 `yaml:"radius"`
	SpeedX   float64 `yaml:"speed_x"`
	SpeedY   float64 `yaml:"speed_y"`
	MaxDX    float64 `yaml:"max_dx"`    // Horizontal speed at the paddle edge
	SpawnGap float64 `yaml:"spawn_gap"` // Gap between ball and paddle at launch
}

// BlocksConfig defines the block grid and the image area it covers.
type BlocksConfig struct {
	Rows    int      `yaml:"rows"`
	Cols    int      `yaml:"cols"`
	AreaTop float64  `yaml:"area_top"`
	Margin  float64  `yaml:"margin"` // Horizontal margin subtracted from the field width
	Palette []string `yaml:"palette"`
}

// GameplayConfig defines non-physics settings.
type GameplayConfig struct {
	Catalog  string `yaml:"catalog"`
	TickRate int    `yaml:"tick_rate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard)", s)
	}
}

// ImageArea returns the square area covered by the block grid: as wide as the
// field minus the margin, at most half the field height, centered.
func (c GameConfig) ImageArea() core.Rect {
	size := c.Field.Width - c.Blocks.Margin
	if half := c.Field.Height / 2; half < size {
		size = half
	}
	size = float64(int(size))
	x := float64(int((c.Field.Width - size) / 2))
	return core.NewRect(x, c.Blocks.AreaTop, size, size)
}

// PaletteColors parses the block palette.
func (c GameConfig) PaletteColors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Blocks.Palette))
	for _, s := range c.Blocks.Palette {
		col, err := core.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("config: palette: %w", err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Validate rejects configurations the physics and layout cannot work with.
// Comparisons are written as !(x > 0) so NaN is rejected too.
func (c GameConfig) Validate() error {
	var errs []error
	if !(c.Field.Width > 0) || !(c.Field.Height > 0) {
		errs = append(errs, errors.New("config: field dimensions must be positive"))
	}
	if !(c.Ball.Radius > 0) {
		errs = append(errs, errors.New("config: ball radius must be positive"))
	}
	if !(c.Paddle.Width > 0) || !(c.Paddle.Height > 0) {
		errs = append(errs, errors.New("config: paddle dimensions must be positive"))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, errors.New("config: paddle is wider than the field"))
	}
	if c.Blocks.Rows <= 0 || c.Blocks.Cols <= 0 {
		errs = append(errs, errors.New("config: block grid must have at least one row and column"))
	} else if a := c.ImageArea(); !(a.W > 0) || !(a.H > 0) {
		errs = append(errs, errors.New("config: block margin leaves no image area"))
	} else if math.Floor(a.W/float64(c.Blocks.Cols)) < 1 || math.Floor(a.H/float64(c.Blocks.Rows)) < 1 {
		errs = append(errs, fmt.Errorf("config: block grid %dx%d is too fine for a %.0f unit image area",
			c.Blocks.Rows, c.Blocks.Cols, a.W))
	}
	if len(c.Blocks.Palette) == 0 {
		errs = append(errs, errors.New("config: block palette is empty"))
	} else if _, err := c.PaletteColors(); err != nil {
		errs = append(errs, err)
	}
	if c.Gameplay.TickRate <= 0 {
		errs = append(errs, errors.New("config: tick rate must be positive"))
	}
	return errors.Join(errs...)
}
