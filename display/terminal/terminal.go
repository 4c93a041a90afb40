// Package terminal presents generations in a terminal using tcell.
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-window/engine"
	"github.com/sheikhrachel/go-gol-window/model"
)

const (
	cellWidth = 2 // terminal columns per grid cell, so cells come out roughly square
	titleRows = 1
)

// Terminal is an engine.Surface drawing each cell as a colored pair of
// columns below a title line. Cells past the terminal's edge are clipped.
//
// Terminals report key presses rather than held keys, so Escape stays
// down once pressed. Ctrl+C or 'q' close the surface.
type Terminal struct {
	screen tcell.Screen
	title  string

	mu      sync.Mutex
	closed  bool
	escaped bool

	events errgroup.Group
}

// New initializes screen and starts reading its input events
func New(screen tcell.Screen, title string) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[New] failed to initialize terminal screen")
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		title:  title,
	}
	t.events.Go(t.pollEvents)
	return t, nil
}

// NewScreen opens the process's terminal
func NewScreen(title string) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to create terminal screen")
	}
	return New(screen, title)
}

func (t *Terminal) pollEvents() error {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventKey:
			t.mu.Lock()
			switch {
			case ev.Key() == tcell.KeyEscape:
				t.escaped = true
			case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				t.closed = true
			}
			t.mu.Unlock()
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// IsOpen reports false once the user closed the surface
func (t *Terminal) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.closed
}

// IsKeyDown reports whether key has been pressed
func (t *Terminal) IsKeyDown(key engine.Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch key {
	case engine.KeyEscape:
		return t.escaped
	}
	return false
}

// Present draws the pixels and flushes them to the terminal
func (t *Terminal) Present(pixels []uint32, width, height int) error {
	if err := engine.CheckBuffer(pixels, width, height); err != nil {
		return errors.Wrap(err, "[Present]")
	}

	cols, rows := t.screen.Size()
	drawText(t.screen, 0, 0, cols, t.title)

	visibleWidth := min(width, cols/cellWidth)
	visibleHeight := min(height, rows-titleRows)
	for y := 0; y < visibleHeight; y++ {
		for x := 0; x < visibleWidth; x++ {
			style := tcell.StyleDefault.Background(CellColor(pixels[y*width+x]))
			for c := 0; c < cellWidth; c++ {
				t.screen.SetContent(x*cellWidth+c, y+titleRows, ' ', nil, style)
			}
		}
	}

	t.screen.Show()
	return nil
}

// Close restores the terminal and waits for the event reader to finish
func (t *Terminal) Close() error {
	t.screen.Fini()
	return t.events.Wait()
}

// CellColor converts a packed 0xRRGGBB pixel into a terminal color
func CellColor(pixel uint32) tcell.Color {
	r, g, b := model.RGB(pixel)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawText(screen tcell.Screen, x, y, maxWidth int, text string) {
	for _, r := range text {
		if x >= maxWidth {
			return
		}
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
