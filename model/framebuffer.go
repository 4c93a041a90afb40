package model

// Framebuffer is a row-major buffer of 0xRRGGBB pixels, one per grid cell.
// The declared width and height bound every point write.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint32

	currentColor uint32
}

// NewFramebuffer creates a framebuffer of the given dimensions, filled with black
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// SetCurrentColor selects the color used by subsequent Point calls
func (fb *Framebuffer) SetCurrentColor(color uint32) {
	fb.currentColor = color & 0xFFFFFF
}

// CurrentColor returns the color used by Point
func (fb *Framebuffer) CurrentColor() uint32 {
	return fb.currentColor
}

// Point writes the current color at (x, y); points outside the buffer are ignored
func (fb *Framebuffer) Point(x, y int) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = fb.currentColor
}

// At returns the pixel at (x, y), or 0 outside the buffer
func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0
	}
	return fb.Pixels[y*fb.Width+x]
}

// Clear fills the whole buffer with the current color
func (fb *Framebuffer) Clear() {
	for i := range fb.Pixels {
		fb.Pixels[i] = fb.currentColor
	}
}
