package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

// Format identifies an image encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks the encoding from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%q: %w", filepath.Ext(path), core.ErrUnsupportedFormat)
	}
}

// RowOrder controls which raster row is written first
type RowOrder int

const (
	// TopDown writes the top of the film first (standard PPM orientation)
	TopDown RowOrder = iota
	// BottomUp writes raster row 0, the bottom of the film, first
	BottomUp
)

func (o RowOrder) String() string {
	switch o {
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	default:
		return fmt.Sprintf("RowOrder(%d)", int(o))
	}
}

// ParseRowOrder converts "top-down" or "bottom-up" to a RowOrder
func ParseRowOrder(s string) (RowOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-down", "topdown", "":
		return TopDown, nil
	case "bottom-up", "bottomup":
		return BottomUp, nil
	default:
		return 0, fmt.Errorf("unknown row order %q (want top-down or bottom-up)", s)
	}
}

// RasterRow maps the n-th row written to the file to a raster row index
func (o RowOrder) RasterRow(fileRow, height int) int {
	if o == BottomUp {
		return fileRow
	}
	return height - 1 - fileRow
}

// Options control how a raster is serialized
type Options struct {
	RowOrder RowOrder
}
