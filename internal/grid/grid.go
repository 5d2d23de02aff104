package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangle of runes.
//
// INVARIANTS:
//   - at least one row and one column
//   - every row has exactly Width() runes
type Grid struct {
	cells  [][]rune
	width  int
	height int
}

// Parse builds a Grid from newline-separated rows.
//
// A trailing carriage return on each row is stripped and trailing blank
// lines are ignored. Blank lines elsewhere count as rows and therefore fail
// the equal-length check.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, &ParseError{Code: ErrCodeEmptyGrid, Message: "puzzle has no rows"}
	}

	cells := make([][]rune, len(lines))
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, &ParseError{Code: ErrCodeEmptyGrid, Message: "first row is empty", Line: 1}
	}
	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, &ParseError{
				Code:    ErrCodeRaggedRows,
				Message: fmt.Sprintf("row has %d cells, expected %d", len(row), width),
				Line:    y + 1,
			}
		}
		cells[y] = row
	}

	return &Grid{cells: cells, width: width, height: len(cells)}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// compiled-in fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At returns the tile at p. ok is false when p lies outside the grid.
func (g *Grid) At(p Position) (tile rune, ok bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid) Row(y int) []rune {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]rune, g.width)
	copy(row, g.cells[y])
	return row
}

// Rows returns a copy of every row, top to bottom.
func (g *Grid) Rows() [][]rune {
	rows := make([][]rune, g.height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// Col returns a copy of column x read top to bottom, or nil when x is out of
// range.
func (g *Grid) Col(x int) []rune {
	if x < 0 || x >= g.width {
		return nil
	}
	col := make([]rune, g.height)
	for y, row := range g.cells {
		col[y] = row[x]
	}
	return col
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Position, tile rune)) {
	for y, row := range g.cells {
		for x, tile := range row {
			fn(Position{X: x, Y: y}, tile)
		}
	}
}

// Find returns the first position, scanning row-major, whose tile satisfies
// pred.
func (g *Grid) Find(pred func(rune) bool) (Position, bool) {
	for y, row := range g.cells {
		for x, tile := range row {
			if pred(tile) {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// FindAll returns every position whose tile satisfies pred, row-major.
func (g *Grid) FindAll(pred func(rune) bool) []Position {
	var found []Position
	g.Each(func(p Position, tile rune) {
		if pred(tile) {
			found = append(found, p)
		}
	})
	return found
}

// String renders the grid back to newline-separated rows.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
