package loaders

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/output"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
)

// ImageData holds 8-bit RGB pixels in file order (row 0 is the first row stored)
type ImageData struct {
	Width  int
	Height int
	Pixels [][3]uint8
}

// At returns the pixel at column x of file row y
func (d *ImageData) At(x, y int) [3]uint8 {
	return d.Pixels[y*d.Width+x]
}

// Raster converts the image back to a raster, undoing the row order it was written with.
// Channels become value/255.
func (d *ImageData) Raster(order output.RowOrder) (*renderer.Raster, error) {
	raster, err := renderer.NewRaster(d.Width, d.Height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < d.Height; y++ {
		j := order.RasterRow(y, d.Height)
		for x := 0; x < d.Width; x++ {
			p := d.At(x, y)
			raster.Set(x, j, core.NewVec3(
				float64(p[0])/output.MaxValue,
				float64(p[1])/output.MaxValue,
				float64(p[2])/output.MaxValue,
			))
		}
	}
	return raster, nil
}

// LoadImage loads a PPM, PNG, BMP or TIFF image
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return DecodeImage(bufio.NewReader(file))
}

// DecodeImage detects the format from the header and decodes the image
func DecodeImage(r *bufio.Reader) (*ImageData, error) {
	magic, err := r.Peek(2)
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	if bytes.Equal(magic, []byte("P3")) || bytes.Equal(magic, []byte("P6")) {
		return ReadPPM(r)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return fromImage(img), nil
}

func fromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([][3]uint8, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
