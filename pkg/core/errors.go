package core

import "errors"

// Epsilon is the smallest ray parameter accepted as a hit.
// Roots at or below it are treated as self-intersection noise at the ray origin.
const Epsilon = 1e-4

var (
	// ErrInvalidDimensions is returned when the raster width or height is not positive
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrOutputUnavailable is returned when the output destination cannot be opened for writing
	ErrOutputUnavailable = errors.New("output unavailable")

	// ErrDegenerateVector is returned when a zero-length vector has to be normalized
	ErrDegenerateVector = errors.New("degenerate vector")

	// ErrUnsupportedMaterial is returned when shading is requested for a non-diffuse surface
	ErrUnsupportedMaterial = errors.New("unsupported material")

	// ErrInvalidSurface is returned for a sphere with a bad radius, albedo or material
	ErrInvalidSurface = errors.New("invalid surface")

	// ErrInvalidCamera is returned for a non-positive focal distance or a field of view outside (0, π)
	ErrInvalidCamera = errors.New("invalid camera")

	// ErrUnsupportedFormat is returned when an output path has no known image extension
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrMalformedImage is returned when an image file cannot be parsed
	ErrMalformedImage = errors.New("malformed image")
)
