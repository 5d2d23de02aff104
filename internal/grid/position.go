package grid

import "fmt"

// Direction is one of the four axis-aligned moves on the grid.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in traversal order.
// Tracing relies on this order for deterministic tie-breaking.
var Directions = [4]Direction{Left, Right, Up, Down}

var directionNames = [4]string{"left", "right", "up", "down"}

// Offset returns the unit (dx, dy) step for the direction.
func (d Direction) Offset() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	if d < Left || d > Down {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Position identifies a cell. It is a comparable value type.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the neighbouring position one cell toward d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DirectionTo reports which direction leads from p to an orthogonally
// adjacent position q.
func (p Position) DirectionTo(q Position) (Direction, bool) {
	for _, d := range Directions {
		if p.Step(d) == q {
			return d, true
		}
	}
	return 0, false
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
