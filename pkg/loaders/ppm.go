package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
)

// ReadPPM parses a P3 (plain) or P6 (binary) PPM with maxval 255.
// Header fields may be separated by any whitespace and '#' comments.
func ReadPPM(r io.Reader) (*ImageData, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	p := &ppmScanner{r: br}

	magic, err := p.token()
	if err != nil {
		return nil, malformed("magic number: %v", err)
	}
	if magic != "P3" && magic != "P6" {
		return nil, malformed("unsupported magic number %q", magic)
	}

	width, err := p.int("width")
	if err != nil {
		return nil, err
	}
	height, err := p.int("height")
	if err != nil {
		return nil, err
	}
	maxVal, err := p.int("maxval")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, malformed("dimensions %dx%d", width, height)
	}
	if width > renderer.MaxPixels/height {
		return nil, malformed("dimensions %dx%d too large", width, height)
	}
	if maxVal != 255 {
		return nil, malformed("maxval %d, only 255 is supported", maxVal)
	}

	data := &ImageData{
		Width:  width,
		Height: height,
		Pixels: make([][3]uint8, width*height),
	}

	if magic == "P6" {
		// The single whitespace byte after maxval was consumed with the token,
		// unless a comment followed it directly; then the comment's newline ends the header
		if next, err := br.Peek(1); err == nil && next[0] == '#' {
			if _, err := br.ReadBytes('\n'); err != nil {
				return nil, malformed("unterminated header comment: %v", err)
			}
		}
		buf := make([]byte, 3*width*height)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, malformed("short raster: %v", err)
		}
		for k := range data.Pixels {
			data.Pixels[k] = [3]uint8{buf[3*k], buf[3*k+1], buf[3*k+2]}
		}
		return data, nil
	}

	for k := range data.Pixels {
		for c := 0; c < 3; c++ {
			v, err := p.int("sample")
			if err != nil {
				return nil, fmt.Errorf("pixel %d: %w", k, err)
			}
			if v > maxVal {
				return nil, malformed("pixel %d: sample %d exceeds maxval", k, v)
			}
			data.Pixels[k][c] = uint8(v)
		}
	}

	// Anything after the last sample other than whitespace is an error
	if tok, err := p.token(); err == nil {
		return nil, malformed("trailing data %q", tok)
	} else if !errors.Is(err, io.EOF) {
		return nil, malformed("%v", err)
	}

	return data, nil
}

// LoadPPM reads a PPM file
func LoadPPM(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return ReadPPM(file)
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), core.ErrMalformedImage)
}

// ppmScanner splits the netpbm header and plain raster into tokens
type ppmScanner struct {
	r *bufio.Reader
}

func (p *ppmScanner) token() (string, error) {
	var tok []byte
	for {
		b, err := p.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}

		switch {
		case b == '#':
			if len(tok) > 0 {
				// A comment ends the token; leave it for the next call
				if err := p.r.UnreadByte(); err != nil {
					return "", err
				}
				return string(tok), nil
			}
			if _, err := p.r.ReadBytes('\n'); err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
		case isSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func (p *ppmScanner) int(field string) (int, error) {
	tok, err := p.token()
	if err != nil {
		return 0, malformed("%s: %v", field, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, malformed("%s: invalid number %q", field, tok)
	}
	return v, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
