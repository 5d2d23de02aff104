// Package pipe holds the connectivity rules of the tile alphabet.
//
// Each connector tile opens toward exactly two directions. A path occupying
// a tile may exit toward either open end, and a path may enter a tile when
// the move direction points into one of its open ends. The start tile S is
// treated as open in every direction until its real shape is resolved.
package pipe

import "github.com/roach88/pipemaze/internal/grid"

// Tile characters.
const (
	Vertical   = '|'
	Horizontal = '-'
	NorthEast  = 'L'
	NorthWest  = 'J'
	SouthWest  = '7'
	SouthEast  = 'F'
	Start      = 'S'
	Ground     = '.'
)

type openings [4]bool // indexed by grid.Direction

func open(dirs ...grid.Direction) openings {
	var o openings
	for _, d := range dirs {
		o[d] = true
	}
	return o
}

// exits maps each known tile to the directions a path may leave it toward.
var exits = map[rune]openings{
	Vertical:   open(grid.Up, grid.Down),
	Horizontal: open(grid.Left, grid.Right),
	NorthEast:  open(grid.Up, grid.Right),
	NorthWest:  open(grid.Up, grid.Left),
	SouthWest:  open(grid.Left, grid.Down),
	SouthEast:  open(grid.Down, grid.Right),
	Start:      open(grid.Left, grid.Right, grid.Up, grid.Down),
	Ground:     {},
}

// AcceptsExit reports whether a path on tile may leave toward d.
func AcceptsExit(tile rune, d grid.Direction) bool {
	o, ok := exits[tile]
	return ok && d >= grid.Left && d <= grid.Down && o[d]
}

// AcceptsEntry reports whether a path moving in direction d may enter tile.
// Moving Up enters through the tile's bottom end, so the tile must open
// toward the opposite of d.
func AcceptsEntry(tile rune, d grid.Direction) bool {
	return AcceptsExit(tile, d.Opposite())
}

// IsKnown reports whether tile belongs to the alphabet.
func IsKnown(tile rune) bool {
	_, ok := exits[tile]
	return ok
}

// IsConnector reports whether tile is one of the six two-ended shapes.
func IsConnector(tile rune) bool {
	return tile != Start && tile != Ground && IsKnown(tile)
}

// ReachesUp reports whether the tile's connector touches the row above.
// A horizontal scan crosses the loop boundary exactly at these tiles.
func ReachesUp(tile rune) bool {
	return tile != Start && AcceptsExit(tile, grid.Up)
}

// Shapes lists the six connector tiles.
var Shapes = [6]rune{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast}

// ShapeFor returns the connector whose open ends are exactly a and b, in
// either order. ok is false when no connector joins them (a == b).
func ShapeFor(a, b grid.Direction) (rune, bool) {
	for _, shape := range Shapes {
		o := exits[shape]
		if a != b && o[a] && o[b] {
			return shape, true
		}
	}
	return 0, false
}
