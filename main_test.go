package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-simple-raytracer/pkg/loaders"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{"defaults", []string{"40", "30", "out.ppm"}, false},
		{"all flags", []string{"-scene", "single-sphere", "-workers", "2", "-tile", "8", "-rows", "bottom-up", "-quiet", "40", "30", "out.png"}, false},
		{"missing outfile", []string{"40", "30"}, true},
		{"too many args", []string{"40", "30", "a.ppm", "b.ppm"}, true},
		{"non-numeric width", []string{"wide", "30", "out.ppm"}, true},
		{"zero height", []string{"40", "0", "out.ppm"}, true},
		{"negative width", []string{"--", "-4", "30", "out.ppm"}, true},
		{"bad row order", []string{"-rows", "sideways", "40", "30", "out.ppm"}, true},
		{"unknown flag", []string{"-bogus", "40", "30", "out.ppm"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			opts, _, err := parseArgs(tt.args, &stderr)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if opts.width != 40 || opts.height != 30 {
				t.Errorf("Expected 40x30, got %dx%d", opts.width, opts.height)
			}
		})
	}
}

func TestRun_WritesImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ppm")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-workers", "3", "-tile", "7", "64", "48", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Render saved as") {
		t.Errorf("Expected progress output, got %q", stdout.String())
	}

	data, err := loaders.LoadPPM(path)
	if err != nil {
		t.Fatalf("LoadPPM: %v", err)
	}
	if data.Width != 64 || data.Height != 48 {
		t.Errorf("Expected 64x48, got %dx%d", data.Width, data.Height)
	}

	// The reference spheres sit below the eye, so the top row sees only background
	for x := 0; x < data.Width; x++ {
		if px := data.At(x, 0); px != [3]uint8{} {
			t.Fatalf("Top row pixel %d should be background, got %v", x, px)
		}
	}
	lit := false
	for _, px := range data.Pixels {
		if px != [3]uint8{} {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("Expected at least one lit pixel")
	}
}

func TestRun_RowOrders(t *testing.T) {
	dir := t.TempDir()
	topDown := filepath.Join(dir, "top.ppm")
	bottomUp := filepath.Join(dir, "bottom.ppm")

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-quiet", "32", "24", topDown}, &stdout, &stderr); code != 0 {
		t.Fatalf("top-down run failed: %s", stderr.String())
	}
	if code := run(context.Background(), []string{"-quiet", "-rows", "bottom-up", "32", "24", bottomUp}, &stdout, &stderr); code != 0 {
		t.Fatalf("bottom-up run failed: %s", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no output with -quiet, got %q", stdout.String())
	}

	a, err := loaders.LoadPPM(topDown)
	if err != nil {
		t.Fatalf("LoadPPM: %v", err)
	}
	b, err := loaders.LoadPPM(bottomUp)
	if err != nil {
		t.Fatalf("LoadPPM: %v", err)
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.At(x, y) != b.At(x, a.Height-1-y) {
				t.Fatalf("Row %d of top-down output should equal row %d of bottom-up output", y, a.Height-1-y)
			}
		}
	}
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"invalid dimensions", []string{"0", "10", filepath.Join(dir, "zero.ppm")}, 1},
		{"overflowing dimensions", []string{"4000000000", "4000000000", filepath.Join(dir, "huge.ppm")}, 1},
		{"unknown scene", []string{"-scene", "nonexistent", "10", "10", filepath.Join(dir, "unknown.ppm")}, 1},
		{"unwritable path", []string{"10", "10", filepath.Join(dir, "missing", "out.ppm")}, 1},
		{"unsupported extension", []string{"10", "10", filepath.Join(dir, "out.gif")}, 1},
		{"usage", []string{}, 1},
		{"unknown flag", []string{"-bogus"}, 2},
		{"help", []string{"-help"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(context.Background(), tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("Expected exit code %d, got %d (stderr: %s)", tt.code, code, stderr.String())
			}
		})
	}

	// Failed runs leave no output files behind
	for _, name := range []string{"zero.ppm", "huge.ppm", "unknown.ppm", "out.gif"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected %s not to exist, stat returned %v", name, err)
		}
	}
}

func TestRun_FlagErrorReportedOnce(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-bogus", "4", "4", "out.ppm"}, &stdout, &stderr); code != 2 {
		t.Fatalf("Expected exit code 2, got %d", code)
	}
	if n := strings.Count(stderr.String(), "flag provided but not defined"); n != 1 {
		t.Errorf("Expected the flag error once, got %d times:\n%s", n, stderr.String())
	}
}

func TestRun_CancelledDiscardsOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cancelled.ppm")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	if code := run(ctx, []string{"-quiet", "64", "48", path}, &stdout, &stderr); code != 1 {
		t.Fatalf("Expected exit code 1, got %d", code)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected partial output to be removed, stat returned %v", err)
	}
}

func TestRun_ListScenes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-list"}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	for _, id := range []string{"reference", "single-sphere", "empty"} {
		if !strings.Contains(stdout.String(), id) {
			t.Errorf("Expected scene %q in listing:\n%s", id, stdout.String())
		}
	}
}
