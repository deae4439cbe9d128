package config

import (
	_ "embed"
)

//go:embed defaults/quizbreak.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. The values reproduce the
// original 800x600 layout.
func DefaultConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			BottomOffset: 50,
			Speed:        8,
		},
		Ball: BallConfig{
			Radius:   10,
			SpeedX:   3,
			SpeedY:   -3,
			MaxDX:    3,
			SpawnGap: 5,
		},
		Blocks: BlocksConfig{
			Rows:    6,
			Cols:    6,
			AreaTop: 50,
			Margin:  100,
			Palette: []string{"#ff0000", "#00ff00", "#0000ff", "#ffa500"},
		},
		Gameplay: GameplayConfig{
			Catalog:  "aws",
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
