package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/output"
)

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")

	// Top row white and red, bottom row green and blue
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if imageData.Width != 2 || imageData.Height != 2 {
		t.Fatalf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}

	expected := [][3]uint8{{255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
	for k, want := range expected {
		if imageData.Pixels[k] != want {
			t.Errorf("Pixel %d: expected %v, got %v", k, want, imageData.Pixels[k])
		}
	}

	// Top-down files put the first row at the top of the raster
	raster, err := imageData.Raster(output.TopDown)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}
	if got := raster.At(0, 1); got != core.NewVec3(1, 1, 1) {
		t.Errorf("Top-left should be white, got %v", got)
	}
	if got := raster.At(1, 0); got != core.NewVec3(0, 0, 1) {
		t.Errorf("Bottom-right should be blue, got %v", got)
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}
