package output

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
)

// MaxValue is the largest channel value written
const MaxValue = 255

// Quantize converts a linear channel to 0..255 as round(clamp(c, 0, 1) * 255)
func Quantize(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(math.Round(max(0, min(1, c)) * MaxValue))
}

// QuantizeColor quantizes all three channels
func QuantizeColor(c core.Vec3) [3]uint8 {
	return [3]uint8{Quantize(c.X), Quantize(c.Y), Quantize(c.Z)}
}

// WritePPM writes the raster as plain-text PPM (P3).
// Each image row is one line of "r g b r g b ..." separated by single spaces.
func WritePPM(w io.Writer, raster *renderer.Raster, order RowOrder) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", raster.Width, raster.Height, MaxValue); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	line := make([]byte, 0, raster.Width*12)
	for row := 0; row < raster.Height; row++ {
		j := order.RasterRow(row, raster.Height)
		line = line[:0]
		for i := 0; i < raster.Width; i++ {
			rgb := QuantizeColor(raster.At(i, j))
			for k, v := range rgb {
				if i > 0 || k > 0 {
					line = append(line, ' ')
				}
				line = strconv.AppendUint(line, uint64(v), 10)
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("failed to write PPM row %d: %w", row, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM: %w", err)
	}
	return nil
}
