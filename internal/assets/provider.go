// Package assets supplies topic images to the game. Loading never fails:
// missing or undecodable files are replaced by a labelled placeholder.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp" // BMP decoder
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

// Background fills the image area around letterboxed images and placeholders.
var Background color.Color = core.ColorLightBlue

// Provider supplies the raster image for a topic, sized to a target box.
type Provider interface {
	// Load returns a w×h image for ref. label names the topic on a placeholder.
	Load(ref, label string, w, h int) image.Image
}

type cacheKey struct {
	ref  string
	w, h int
}

// FileProvider loads images from a directory and caches the scaled results.
// It is safe for concurrent use.
type FileProvider struct {
	root   string
	face   font.Face
	logger *log.Logger

	mu    sync.Mutex
	cache map[cacheKey]*image.RGBA
}

// NewFileProvider creates a provider resolving relative references against root.
// A nil face selects the built-in font; a nil logger discards messages.
func NewFileProvider(root string, face font.Face, logger *log.Logger) *FileProvider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if face == nil {
		face = DefaultFace()
	}
	return &FileProvider{
		root:   root,
		face:   face,
		logger: logger,
		cache:  make(map[cacheKey]*image.RGBA),
	}
}

// Load implements Provider.
func (p *FileProvider) Load(ref, label string, w, h int) image.Image {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := cacheKey{ref: ref, w: w, h: h}
	if img, ok := p.cache[key]; ok {
		return img
	}

	var img *image.RGBA
	src, err := p.decode(ref)
	if err != nil {
		p.logger.Warn("using placeholder image", "ref", ref, "error", err)
		img = Placeholder(label, w, h, p.face)
	} else {
		img = Fit(src, w, h)
	}

	p.cache[key] = img
	return img
}

// decode opens and decodes an image file.
func (p *FileProvider) decode(ref string) (image.Image, error) {
	if ref == "" {
		return nil, fmt.Errorf("assets: empty image reference")
	}
	if strings.EqualFold(filepath.Ext(ref), ".svg") {
		return nil, fmt.Errorf("assets: %s: svg images are not supported", ref)
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.root, ref)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// Fit scales src uniformly to fit inside w×h and centers it on the background.
func Fit(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, xdraw.Src)

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 || w <= 0 || h <= 0 {
		return dst
	}

	ratio := min(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy()))
	nw := int(float64(sb.Dx()) * ratio)
	nh := int(float64(sb.Dy()) * ratio)
	ox := (w - nw) / 2
	oy := (h - nh) / 2

	xdraw.CatmullRom.Scale(dst, image.Rect(ox, oy, ox+nw, oy+nh), src, sb, xdraw.Over, nil)
	return dst
}

// Placeholder returns a w×h background box with label centered in black.
func Placeholder(label string, w, h int, face font.Face) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, xdraw.Src)
	if label == "" || face == nil {
		return dst
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	advance := d.MeasureString(label).Round()
	m := face.Metrics()
	baseline := h/2 + (m.Ascent.Round()-m.Descent.Round())/2
	d.Dot = fixed.P((w-advance)/2, baseline)
	d.DrawString(label)
	return dst
}
