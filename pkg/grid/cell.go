// pkg/grid/cell.go
package grid

import (
	"fmt"
	"math"

	"automata-defense/pkg/utils"
)

// Cell is a grid coordinate. X grows to the right, Y grows downwards.
type Cell struct {
	X, Y int
}

// NeighborDirections lists the four orthogonal directions, clockwise from north.
var NeighborDirections = [4]Cell{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Subtract returns the difference of two cells.
func (c Cell) Subtract(other Cell) Cell {
	return Cell{X: c.X - other.X, Y: c.Y - other.Y}
}

// Neighbors returns the four orthogonal neighbours of c. Bounds are not checked.
func (c Cell) Neighbors() [4]Cell {
	var res [4]Cell
	for i, d := range NeighborDirections {
		res[i] = c.Add(d)
	}
	return res
}

// Manhattan returns the 4-connected step distance between two cells.
func (c Cell) Manhattan(to Cell) int {
	return utils.Abs(c.X-to.X) + utils.Abs(c.Y-to.Y)
}

// Dist returns the euclidean distance between cell centres.
func (c Cell) Dist(to Cell) float64 {
	dx := float64(c.X - to.X)
	dy := float64(c.Y - to.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// IsAdjacent reports whether two cells share an edge.
func (c Cell) IsAdjacent(to Cell) bool {
	return c.Manhattan(to) == 1
}
