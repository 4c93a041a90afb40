package rules

// Cell states
const (
	Dead  = false
	Alive = true
)

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to a single cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with
exactly 3, every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
