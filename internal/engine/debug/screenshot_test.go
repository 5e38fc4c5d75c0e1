package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestCaptureFromPixels(t *testing.T) {
	const w, h = 4, 2
	pixels := make([]byte, w*h*3)
	// Single red pixel at (1, 0).
	pixels[(0*w+1)*3] = 255

	sc := NewScreenshotCapture(t.TempDir(), "test")
	path, err := sc.CaptureFromPixels(pixels, w, h)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("screenshot size = %v, want %dx%d", img.Bounds(), w, h)
	}

	r, g, b, _ := img.At(1, 0).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("pixel (1,0) = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 4, 2); err == nil {
		t.Error("expected error for mismatched pixel data size")
	}
}
