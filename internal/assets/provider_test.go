package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
}

func sameRGB(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8
}

func TestLoadLetterboxesWideImage(t *testing.T) {
	dir := t.TempDir()
	red := color.RGBA{R: 255, A: 255}
	writePNG(t, filepath.Join(dir, "wide.png"), 40, 20, red)

	p := NewFileProvider(dir, nil, nil)
	img := p.Load("wide.png", "Wide", 100, 100)

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("image size = %v, expected 100x100", b)
	}
	// 2:1 image scaled to 100x50, centered vertically at y=25..75.
	if !sameRGB(img.At(50, 50), red) {
		t.Errorf("center pixel = %v, expected red", img.At(50, 50))
	}
	if !sameRGB(img.At(50, 5), Background) {
		t.Errorf("letterbox pixel = %v, expected background", img.At(50, 5))
	}
	if !sameRGB(img.At(50, 95), Background) {
		t.Errorf("letterbox pixel = %v, expected background", img.At(50, 95))
	}
}

func TestLoadMissingFileGivesPlaceholder(t *testing.T) {
	var logs bytes.Buffer
	p := NewFileProvider(t.TempDir(), nil, log.New(&logs))

	img := p.Load("nope.png", "Amazon S3", 120, 80)
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("placeholder size = %v, expected 120x80", b)
	}
	if !sameRGB(img.At(0, 0), Background) {
		t.Errorf("placeholder corner = %v, expected background", img.At(0, 0))
	}
	if !hasPixel(img, color.Black) {
		t.Error("placeholder should carry the label text")
	}
	if logs.Len() == 0 {
		t.Error("fallback should be logged")
	}
}

func TestLoadCorruptFileGivesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := NewFileProvider(dir, nil, nil)
	img := p.Load("bad.png", "", 10, 10)
	if !sameRGB(img.At(5, 5), Background) {
		t.Errorf("corrupt file should yield a blank placeholder, got %v", img.At(5, 5))
	}
}

func TestLoadSVGGivesPlaceholder(t *testing.T) {
	p := NewFileProvider(t.TempDir(), nil, nil)
	img := p.Load("icon.svg", "Icon", 50, 50)
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Fatalf("svg placeholder size = %v", b)
	}
}

func TestLoadCaches(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 4, 4, color.White)

	p := NewFileProvider(dir, nil, nil)
	first := p.Load("a.png", "A", 20, 20)
	second := p.Load("a.png", "A", 20, 20)
	if first != second {
		t.Error("second load of the same reference and size should hit the cache")
	}
}

func TestLoadFaceFallback(t *testing.T) {
	var logs bytes.Buffer
	face := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 24, log.New(&logs))
	if face != DefaultFace() {
		t.Error("missing font should fall back to the built-in face")
	}
	if logs.Len() == 0 {
		t.Error("font fallback should be logged")
	}
	if LoadFace("", 24, nil) != DefaultFace() {
		t.Error("empty path should select the built-in face")
	}
}

func hasPixel(img image.Image, c color.Color) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if sameRGB(img.At(x, y), c) {
				return true
			}
		}
	}
	return false
}
