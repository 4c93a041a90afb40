package model

// Reference cell colors, packed 0xRRGGBB
const (
	DefaultLiveColor uint32 = 0x81C14B
	DefaultDeadColor uint32 = 0x204E4A
)

// Palette maps cell states to framebuffer colors
type Palette struct {
	Live uint32
	Dead uint32
}

// DefaultPalette returns the reference live/dead colors
func DefaultPalette() Palette {
	return Palette{Live: DefaultLiveColor, Dead: DefaultDeadColor}
}

// ColorOf returns the color of a live or dead cell
func (p Palette) ColorOf(alive bool) uint32 {
	if alive {
		return p.Live
	}
	return p.Dead
}

// Paint renders every cell of g into fb as a separate pass.
// The image is identical to the one NextGeneration paints for the same generation.
func (p Palette) Paint(g *Grid, fb *Framebuffer) {
	g.mustMatch(fb)

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fb.SetCurrentColor(p.ColorOf(g.cells[y][x]))
			fb.Point(x, y)
		}
	}
}

// RGB splits a packed 0xRRGGBB color into its channels
func RGB(color uint32) (r, g, b uint8) {
	return uint8(color >> 16), uint8(color >> 8), uint8(color)
}

// PackRGBA expands 0xRRGGBB pixels into opaque RGBA bytes, reusing dst when it is large enough
func PackRGBA(pixels []uint32, dst []byte) []byte {
	if cap(dst) < len(pixels)*4 {
		dst = make([]byte, len(pixels)*4)
	}
	dst = dst[:len(pixels)*4]

	for i, px := range pixels {
		r, g, b := RGB(px)
		dst[i*4] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = 0xFF
	}
	return dst
}
