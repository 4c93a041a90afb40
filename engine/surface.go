package engine

import "github.com/pkg/errors"

// Key identifies a key the loop polls on a Surface
type Key int

const (
	KeyEscape Key = iota
)

// ErrBufferSize is returned when a pixel buffer does not match its declared dimensions
var ErrBufferSize = errors.New("pixel buffer size mismatch")

// Surface is where frames are shown and exit requests come from
type Surface interface {
	// IsOpen reports whether the surface can still show frames
	IsOpen() bool
	// IsKeyDown reports whether key is currently pressed
	IsKeyDown(key Key) bool
	// Present shows a row-major 0xRRGGBB buffer of width x height pixels
	Present(pixels []uint32, width, height int) error
}

// CheckBuffer verifies a buffer holds exactly width x height pixels
func CheckBuffer(pixels []uint32, width, height int) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return errors.Wrapf(ErrBufferSize, "[CheckBuffer] %d pixels for %dx%d", len(pixels), width, height)
	}
	return nil
}
