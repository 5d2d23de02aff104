// Package render draws a solved puzzle as text.
//
// Loop tiles are drawn with line glyphs, the start cell as S, enclosed
// cells as I, and every other cell as a dot. Pipes that are not part of
// the loop are drawn as dots too.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/pipemaze/internal/enclosure"
	"github.com/roach88/pipemaze/internal/grid"
	"github.com/roach88/pipemaze/internal/pipe"
	"github.com/roach88/pipemaze/internal/solver"
)

// Charset selects the glyphs used for loop tiles.
type Charset int

const (
	// Unicode draws the loop with box-drawing characters.
	Unicode Charset = iota
	// ASCII draws straights as - and | and every corner as +.
	ASCII
)

func (c Charset) String() string {
	switch c {
	case Unicode:
		return "unicode"
	case ASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Charset(%d)", int(c))
	}
}

// ParseCharset maps a config or flag value to a Charset.
func ParseCharset(name string) (Charset, error) {
	switch strings.ToLower(name) {
	case "", "unicode":
		return Unicode, nil
	case "ascii":
		return ASCII, nil
	default:
		return 0, fmt.Errorf("unknown charset %q (expected unicode or ascii)", name)
	}
}

const (
	startGlyph    = 'S'
	enclosedGlyph = 'I'
	emptyGlyph    = '.'
)

var glyphs = map[Charset]map[rune]rune{
	Unicode: {
		pipe.Horizontal: '─',
		pipe.Vertical:   '│',
		pipe.NorthEast:  '└',
		pipe.NorthWest:  '┘',
		pipe.SouthWest:  '┐',
		pipe.SouthEast:  '┌',
	},
	ASCII: {
		pipe.Horizontal: '-',
		pipe.Vertical:   '|',
		pipe.NorthEast:  '+',
		pipe.NorthWest:  '+',
		pipe.SouthWest:  '+',
		pipe.SouthEast:  '+',
	},
}

// Glyph returns the character drawn for a loop tile.
func (c Charset) Glyph(tile rune) rune {
	if g, ok := glyphs[c][tile]; ok {
		return g
	}
	return emptyGlyph
}

// String renders sol with charset c, one line per row, each ending in a
// newline.
func String(sol *solver.Solution, c Charset) string {
	var b strings.Builder
	g := sol.Grid
	b.Grow((g.Width() + 1) * g.Height())

	for y, row := range g.Rows() {
		for x, tile := range row {
			b.WriteRune(cell(sol, c, grid.Position{X: x, Y: y}, tile))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Write renders sol to w.
func Write(w io.Writer, sol *solver.Solution, c Charset) error {
	_, err := io.WriteString(w, String(sol, c))
	return err
}

func cell(sol *solver.Solution, c Charset, p grid.Position, tile rune) rune {
	switch sol.Classification.Kind(p) {
	case enclosure.OnLoop:
		if p == sol.Loop.Start() {
			return startGlyph
		}
		return c.Glyph(tile)
	case enclosure.Inside:
		return enclosedGlyph
	default:
		return emptyGlyph
	}
}
