// Package enclosure counts the grid cells enclosed by a traced loop.
//
// Each row is scanned left to right with an inside flag. Crossing a loop
// tile whose connector reaches the row above (|, L, J) flips the flag; -, 7
// and F run along or below the scan line and leave it unchanged. A cell
// off the loop is enclosed exactly when the flag is set. This is the
// even-odd crossing rule for a ray cast just above each cell's centre line.
package enclosure

import (
	"github.com/roach88/pipemaze/internal/grid"
	"github.com/roach88/pipemaze/internal/loop"
	"github.com/roach88/pipemaze/internal/pipe"
)

// Kind classifies a single cell.
type Kind int

const (
	Outside Kind = iota
	Inside
	OnLoop
)

func (k Kind) String() string {
	switch k {
	case Inside:
		return "inside"
	case OnLoop:
		return "loop"
	default:
		return "outside"
	}
}

// Classification is the result of one scan.
type Classification struct {
	// Enclosed lists inside cells in row-major order.
	Enclosed []grid.Position

	kinds [][]Kind
}

// Count returns the number of enclosed cells.
func (c *Classification) Count() int { return len(c.Enclosed) }

// Kind returns the classification of p. Cells outside the grid are Outside.
func (c *Classification) Kind(p grid.Position) Kind {
	if p.Y < 0 || p.Y >= len(c.kinds) || p.X < 0 || p.X >= len(c.kinds[p.Y]) {
		return Outside
	}
	return c.kinds[p.Y][p.X]
}

// Classify scans g and sorts every cell into loop, inside or outside.
// startShape stands in for the start tile, which is never read from g.
func Classify(g *grid.Grid, l *loop.Loop, startShape rune) *Classification {
	c := &Classification{kinds: make([][]Kind, g.Height())}
	start := l.Start()

	for y := 0; y < g.Height(); y++ {
		tiles := g.Row(y)
		row := make([]Kind, len(tiles))
		inside := false
		for x, tile := range tiles {
			p := grid.Position{X: x, Y: y}
			if !l.Contains(p) {
				if inside {
					row[x] = Inside
					c.Enclosed = append(c.Enclosed, p)
				}
				continue
			}

			row[x] = OnLoop
			if p == start {
				tile = startShape
			}
			if pipe.ReachesUp(tile) {
				inside = !inside
			}
		}
		c.kinds[y] = row
	}

	return c
}

// Count is shorthand for Classify(g, l, startShape).Count().
func Count(g *grid.Grid, l *loop.Loop, startShape rune) int {
	return Classify(g, l, startShape).Count()
}
