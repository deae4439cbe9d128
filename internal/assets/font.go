package assets

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFace is the built-in fallback face.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// LoadFace loads a TrueType/OpenType font at the given point size.
// An empty path selects the built-in face; any failure is logged and also
// falls back to it.
func LoadFace(path string, size float64, logger *log.Logger) font.Face {
	if path == "" {
		return DefaultFace()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	face, err := parseFace(path, size)
	if err != nil {
		logger.Warn("font unavailable, using built-in face", "path", path, "error", err)
		return DefaultFace()
	}
	return face
}

func parseFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("assets: cannot build face %s: %w", path, err)
	}
	return face, nil
}
