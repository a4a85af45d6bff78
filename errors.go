package fb

import "errors"

// Sentinel errors returned by fb. Callers match them with errors.Is;
// returned errors usually wrap them with context.
var (
	// ErrNilSurface is returned when a renderer is created without a surface.
	ErrNilSurface = errors.New("fb: nil surface")

	// ErrNilFont is returned when a nil font is selected.
	ErrNilFont = errors.New("fb: nil font")

	// ErrInvalidDimensions is returned for non-positive surface sizes.
	ErrInvalidDimensions = errors.New("fb: invalid dimensions")

	// ErrInvalidFormat is returned for unknown pixel formats.
	ErrInvalidFormat = errors.New("fb: invalid pixel format")

	// ErrDataTooSmall is returned when a raw buffer cannot hold the surface.
	ErrDataTooSmall = errors.New("fb: data too small")

	// ErrShortImage is returned when image data holds fewer than w*h pixels.
	ErrShortImage = errors.New("fb: image data too short")

	// ErrNotReadable is returned when reading back from a write-only surface.
	ErrNotReadable = errors.New("fb: surface is not readable")

	// ErrOutOfBounds is returned when a readback rectangle leaves the surface.
	ErrOutOfBounds = errors.New("fb: rectangle out of bounds")

	// ErrInvalidBitmap is returned for malformed or unsupported BMP data.
	ErrInvalidBitmap = errors.New("fb: invalid bitmap")
)
