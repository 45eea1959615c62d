package renderer

import (
	"fmt"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

// Raster is a Width x Height grid of linear RGB colors.
// Cell (i, j) is column i, row j, with j = 0 the bottom of the film.
type Raster struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewRaster allocates a black raster
func NewRaster(width, height int) (*Raster, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	return &Raster{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}, nil
}

// MaxPixels caps width*height so a raster always fits in memory
const MaxPixels = 1 << 26

// ValidateDimensions returns core.ErrInvalidDimensions unless both sizes are positive
// and the pixel count is at most MaxPixels.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, core.ErrInvalidDimensions)
	}
	if width > MaxPixels/height {
		return fmt.Errorf("%dx%d exceeds %d pixels: %w", width, height, MaxPixels, core.ErrInvalidDimensions)
	}
	return nil
}

// At returns the color at column i, row j
func (r *Raster) At(i, j int) core.Vec3 {
	return r.pixels[j*r.Width+i]
}

// Set stores the color at column i, row j
func (r *Raster) Set(i, j int, c core.Vec3) {
	r.pixels[j*r.Width+i] = c
}

// Equal reports whether two rasters have the same size and bit-identical colors
func (r *Raster) Equal(other *Raster) bool {
	if r.Width != other.Width || r.Height != other.Height {
		return false
	}
	for k := range r.pixels {
		if r.pixels[k] != other.pixels[k] {
			return false
		}
	}
	return true
}
