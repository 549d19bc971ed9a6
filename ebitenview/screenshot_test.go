package ebitenview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"formed", "formed"},
		{"after-morph", "after-morph"},
		{"frame.01", "frame.01"},
		{"tree form", "tree_form"},
		{"a/b\\c", "a_b_c"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	var s screenshots
	s.request("a")
	s.request("b")
	if len(s.queue) != 2 || s.queue[0] != "a" || s.queue[1] != "b" {
		t.Errorf("queue = %v", s.queue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque untouched
		0, 0, 0, 0, // transparent untouched
		200, 200, 200, 100, // clamps to 255
	}
	unpremultiply(pix)
	want := []byte{127, 63, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0, 255, 255, 255, 100}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("pix[%d] = %d, want %d", i, pix[i], want[i])
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 2 || cfg.Height != 3 {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}
}
