package model

import "github.com/pkg/errors"

// Point is a cell coordinate, or an offset from a pattern's anchor
type Point struct {
	X, Y int
}

// Pattern is a named organism, described by the offsets of its living cells
// relative to its top-left anchor
type Pattern struct {
	Name  string
	Cells []Point
}

// Placement anchors a pattern at (X, Y)
type Placement struct {
	Pattern Pattern
	X, Y    int
}

// Organisms
var (
	Glider = Pattern{Name: "glider", Cells: []Point{
		{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2},
	}}
	Toad = Pattern{Name: "toad", Cells: []Point{
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1},
	}}
	Loaf = Pattern{Name: "loaf", Cells: []Point{
		{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {3, 2}, {2, 3},
	}}
	Boat = Pattern{Name: "boat", Cells: []Point{
		{0, 0}, {1, 0}, {0, 1}, {2, 1}, {1, 2},
	}}
	MiddleWeightSpaceship = Pattern{Name: "middle-weight spaceship", Cells: []Point{
		{2, 0}, {3, 0}, {4, 0}, {1, 1}, {5, 1}, {0, 2}, {5, 2}, {5, 3}, {0, 3}, {1, 4}, {3, 4},
	}}
	Tub = Pattern{Name: "tub", Cells: []Point{
		{1, 0}, {0, 1}, {2, 1}, {1, 2},
	}}
	Block = Pattern{Name: "block", Cells: []Point{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
	}}
	Beehive = Pattern{Name: "beehive", Cells: []Point{
		{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2},
	}}
	Blinker = Pattern{Name: "blinker", Cells: []Point{
		{0, 1}, {1, 1}, {2, 1},
	}}
	Pulsar = Pattern{Name: "pulsar", Cells: []Point{
		{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
		{0, 2}, {5, 2}, {7, 2}, {12, 2}, {0, 3}, {5, 3}, {7, 3}, {12, 3},
		{0, 4}, {5, 4}, {7, 4}, {12, 4}, {2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
		{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
		{0, 8}, {5, 8}, {7, 8}, {12, 8}, {0, 9}, {5, 9}, {7, 9}, {12, 9},
		{0, 10}, {5, 10}, {7, 10}, {12, 10}, {2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
	}}
)

// Seed set names
const (
	SeedDiagonals = "diagonals"
	SeedScatter   = "scatter"
)

// ErrUnknownSeedSet is returned for a seed set name with no layout
var ErrUnknownSeedSet = errors.New("unknown seed set")

// Place marks the pattern's cells live relative to (x, y), skipping any that fall outside the grid
func (g *Grid) Place(p Pattern, x, y int) {
	for _, c := range p.Cells {
		g.Set(x+c.X, y+c.Y, true)
	}
}

// Seed places every placement in order; overlapping placements combine
func (g *Grid) Seed(placements []Placement) {
	for _, pl := range placements {
		g.Place(pl.Pattern, pl.X, pl.Y)
	}
}

// SeedSet returns the placements of a named starting layout
func SeedSet(name string) ([]Placement, error) {
	switch name {
	case SeedDiagonals:
		return diagonalPlacements(), nil
	case SeedScatter:
		return scatterPlacements(), nil
	}
	return nil, errors.Wrapf(ErrUnknownSeedSet, "[SeedSet] %q", name)
}

// diagonalPlacements lays organisms out along three diagonals of a 100x100 board
func diagonalPlacements() []Placement {
	var placements []Placement

	// top-left to bottom-right
	for i := 0; i < 80; i += 10 {
		placements = append(placements,
			Placement{Glider, i, i},
			Placement{Toad, i + 5, i},
			Placement{Loaf, i, i + 5},
			Placement{Boat, i + 5, i + 5},
		)
	}

	// bottom-left to top-right
	for i := 0; i < 80; i += 10 {
		placements = append(placements,
			Placement{MiddleWeightSpaceship, i, 90 - i},
			Placement{Tub, i + 5, 90 - i},
			Placement{Block, i, 85 - i},
			Placement{Beehive, i + 5, 85 - i},
		)
	}

	// center
	for i := 0; i < 80; i += 10 {
		placements = append(placements,
			Placement{Pulsar, i + 10, i + 10},
			Placement{Glider, i + 15, i + 10},
			Placement{Toad, i + 10, i + 15},
			Placement{Loaf, i + 15, i + 15},
		)
	}

	return append(placements, Placement{Pulsar, 45, 80})
}

func scatterPlacements() []Placement {
	return []Placement{
		{Glider, 5, 5},
		{Glider, 0, 10},
		{Toad, 10, 20},
		{Loaf, 20, 35},
		{Loaf, 80, 35},
		{Boat, 30, 50},
		{MiddleWeightSpaceship, 50, 10},
		{Tub, 70, 20},
		{Block, 15, 75},
		{Beehive, 50, 50},
		{Pulsar, 70, 70},
		{Glider, 50, 60},
		{Toad, 60, 30},
		{Toad, 70, 65},
		{Loaf, 40, 80},
		{Boat, 25, 90},
		{Pulsar, 10, 50},
		{Pulsar, 80, 10},

		{Loaf, 20, 5},
		{Loaf, 40, 5},
		{Loaf, 60, 5},
		{Loaf, 80, 5},
		{Loaf, 80, 90},
		{Loaf, 60, 90},
		{Loaf, 40, 90},
		{Loaf, 20, 90},

		{Pulsar, 45, 45},
		{Pulsar, 40, 50},

		{Boat, 30, 80},
		{Boat, 50, 80},
		{Boat, 70, 80},

		{Tub, 30, 15},
		{Tub, 50, 15},
		{Tub, 70, 15},

		{Beehive, 40, 25},
		{Beehive, 60, 25},

		{Block, 40, 70},
		{Block, 60, 70},

		{Toad, 35, 50},
		{Toad, 65, 50},

		{MiddleWeightSpaceship, 50, 40},
		{MiddleWeightSpaceship, 50, 55},

		{Glider, 40, 40},
		{Glider, 30, 40},
		{Glider, 50, 40},

		{Pulsar, 45, 10},
		{Pulsar, 45, 90},
	}
}

// NewSeededGrid creates a width x height grid seeded with the named layout
func NewSeededGrid(width, height int, seedSet string) (*Grid, error) {
	placements, err := SeedSet(seedSet)
	if err != nil {
		return nil, err
	}

	g := NewGrid(width, height)
	g.Seed(placements)
	return g, nil
}
