package output

import (
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
)

// File is an output image opened before rendering so an unwritable destination fails early
type File struct {
	path   string
	format Format
	file   *os.File
	closed bool
}

// Create resolves the format from the extension and creates the destination file
func Create(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, core.ErrOutputUnavailable, err)
	}
	return &File{path: path, format: format, file: f}, nil
}

// Path returns the destination path
func (f *File) Path() string {
	return f.path
}

// Format returns the encoding chosen for this file
func (f *File) Format() Format {
	return f.format
}

// Write encodes the raster into the file
func (f *File) Write(raster *renderer.Raster, opts Options) error {
	if f.closed {
		return fmt.Errorf("%s: %w", f.path, os.ErrClosed)
	}
	if err := Encode(f.file, raster, f.format, opts); err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}
	return nil
}

// Close syncs and closes the file. Calling it again is a no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return errors.Join(f.file.Sync(), f.file.Close())
}

// Discard closes the file and removes it, for renders that failed
func (f *File) Discard() error {
	closeErr := f.Close()
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Join(closeErr, err)
	}
	return closeErr
}

// Save writes raster to path in the format implied by its extension
func Save(path string, raster *renderer.Raster, opts Options) (err error) {
	f, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("%s: %w", path, closeErr)
		}
	}()
	return f.Write(raster, opts)
}
