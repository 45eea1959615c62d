package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
)

// ToImage converts the raster to an RGBA image with the same quantization as the PPM writer.
// Image row 0 is the first row in the given order.
func ToImage(raster *renderer.Raster, order RowOrder) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, raster.Width, raster.Height))
	for y := 0; y < raster.Height; y++ {
		j := order.RasterRow(y, raster.Height)
		for i := 0; i < raster.Width; i++ {
			rgb := QuantizeColor(raster.At(i, j))
			img.SetRGBA(i, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return img
}

// Encode writes the raster to w in the given format
func Encode(w io.Writer, raster *renderer.Raster, format Format, opts Options) error {
	var err error
	switch format {
	case FormatPPM:
		return WritePPM(w, raster, opts.RowOrder)
	case FormatPNG:
		err = png.Encode(w, ToImage(raster, opts.RowOrder))
	case FormatBMP:
		err = bmp.Encode(w, ToImage(raster, opts.RowOrder))
	case FormatTIFF:
		err = tiff.Encode(w, ToImage(raster, opts.RowOrder), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%q: %w", format, core.ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
