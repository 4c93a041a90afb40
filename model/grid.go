package model

import (
	"fmt"

	"github.com/sheikhrachel/go-gol-window/rules"
)

// Grid represents the game board, a fixed-size rectangle of cells stored row-major
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Set sets a cell to alive (true) or dead (false); writes outside the grid are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if g.inBounds(x, y) {
		g.cells[y][x] = alive
	}
}

// Alive returns the state of a cell; cells outside the grid are dead
func (g *Grid) Alive(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CountNeighbors counts the living cells among the 8 around (x, y).
// The grid does not wrap: neighbors past an edge do not exist.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// NextGeneration calculates the next generation and paints every cell of it
// into fb in the same pass. fb must have the grid's dimensions.
func (g *Grid) NextGeneration(fb *Framebuffer, palette Palette) *Grid {
	g.mustMatch(fb)

	next := NewGrid(g.width, g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			alive := rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
			next.cells[y][x] = alive

			fb.SetCurrentColor(palette.ColorOf(alive))
			fb.Point(x, y)
		}
	}
	return next
}

// Step calculates the next generation without rendering it
func (g *Grid) Step() *Grid {
	next := NewGrid(g.width, g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			next.cells[y][x] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
		}
	}
	return next
}

func (g *Grid) mustMatch(fb *Framebuffer) {
	if fb.Width != g.width || fb.Height != g.height {
		panic(fmt.Sprintf("framebuffer %dx%d does not match grid %dx%d",
			fb.Width, fb.Height, g.width, g.height))
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// LivingCells returns the coordinates of every living cell in row-major order
func (g *Grid) LivingCells() []Point {
	var living []Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				living = append(living, Point{X: x, Y: y})
			}
		}
	}
	return living
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the grid with '#' for living cells and '.' for dead ones
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
