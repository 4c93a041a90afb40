// Package window presents generations in a desktop window using ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-window/engine"
	"github.com/sheikhrachel/go-gol-window/model"
)

// Window is an engine.Surface backed by an ebiten window. The framebuffer is
// uploaded to a texture of its own size and scaled to the window when drawn.
type Window struct {
	title  string
	width  int
	height int

	texture *ebiten.Image
	rgba    []byte
}

// New configures the window; it opens when Run is called
func New(title string, width, height int) *Window {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowClosingHandled(true)

	return &Window{
		title:  title,
		width:  width,
		height: height,
	}
}

// IsOpen reports false once the user asked to close the window
func (w *Window) IsOpen() bool {
	return !ebiten.IsWindowBeingClosed()
}

// IsKeyDown reports whether key is held
func (w *Window) IsKeyDown(key engine.Key) bool {
	switch key {
	case engine.KeyEscape:
		return ebiten.IsKeyPressed(ebiten.KeyEscape)
	}
	return false
}

// Present uploads the pixels to the window's texture; it is shown on the next draw
func (w *Window) Present(pixels []uint32, width, height int) error {
	if err := engine.CheckBuffer(pixels, width, height); err != nil {
		return errors.Wrap(err, "[Present]")
	}

	if w.texture == nil || w.texture.Bounds().Dx() != width || w.texture.Bounds().Dy() != height {
		w.texture = ebiten.NewImage(width, height)
	}
	w.rgba = model.PackRGBA(pixels, w.rgba)
	w.texture.WritePixels(w.rgba)
	return nil
}

// Run opens the window and drives loop at the loop's frame delay until it stops
func (w *Window) Run(loop *engine.Loop) error {
	ebiten.SetTPS(loop.TicksPerSecond())

	if err := ebiten.RunGame(&game{window: w, loop: loop}); err != nil {
		return errors.Wrapf(err, "[Run] window %q", w.title)
	}
	return nil
}

// game adapts the loop to ebiten's update/draw callbacks
type game struct {
	window *Window
	loop   *engine.Loop
}

func (g *game) Update() error {
	running, err := g.loop.Tick()
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	texture := g.window.texture
	if texture == nil {
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	tw, th := texture.Bounds().Dx(), texture.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(tw), float64(sh)/float64(th))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(texture, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.window.width, g.window.height
}
