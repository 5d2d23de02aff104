package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallLoop = `.....
.S-7.
.|.|.
.L-J.
.....`

func TestParse_Dimensions(t *testing.T) {
	g, err := Parse(smallLoop)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, smallLoop, g.String())
}

func TestParse_IgnoresTrailingBlankLinesAndCR(t *testing.T) {
	g, err := Parse(".S\r\n-7\r\n\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())

	tile, ok := g.At(Position{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, '7', tile)
}

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n\n"} {
		_, err := Parse(input)
		require.Error(t, err)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, ErrCodeEmptyGrid, pe.Code)
	}
}

func TestParse_RaggedRows(t *testing.T) {
	_, err := Parse("...\n..\n...")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrCodeRaggedRows, pe.Code)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, err.Error(), "line 2")
	assert.True(t, IsParseError(err))
}

func TestParse_InteriorBlankLineIsRagged(t *testing.T) {
	_, err := Parse("..\n\n..")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrCodeRaggedRows, pe.Code)
}

func TestAt_OutOfBounds(t *testing.T) {
	g := MustParse(smallLoop)

	for _, p := range []Position{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {100, 100}} {
		_, ok := g.At(p)
		assert.False(t, ok, "%v should be out of bounds", p)
	}
}

func TestFind_RowMajor(t *testing.T) {
	g := MustParse("..J\nJ..")
	p, ok := g.Find(func(r rune) bool { return r == 'J' })
	require.True(t, ok)
	assert.Equal(t, Position{X: 2, Y: 0}, p)

	_, ok = g.Find(func(r rune) bool { return r == 'S' })
	assert.False(t, ok)
}

func TestFindAll(t *testing.T) {
	g := MustParse("S.S\n..S")
	found := g.FindAll(func(r rune) bool { return r == 'S' })
	assert.Equal(t, []Position{{0, 0}, {2, 0}, {2, 1}}, found)
}

func TestRow_ReturnsCopy(t *testing.T) {
	g := MustParse("ab\ncd")
	row := g.Row(1)
	row[0] = 'z'

	tile, _ := g.At(Position{X: 0, Y: 1})
	assert.Equal(t, 'c', tile)
	assert.Nil(t, g.Row(2))
}

func TestRows_ReturnsCopies(t *testing.T) {
	g := MustParse("ab\ncd")
	rows := g.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []rune("ab"), rows[0])
	assert.Equal(t, []rune("cd"), rows[1])

	rows[0][0] = 'z'
	tile, _ := g.At(Position{X: 0, Y: 0})
	assert.Equal(t, 'a', tile)
}

func TestCol(t *testing.T) {
	g := MustParse("abc\ndef")
	assert.Equal(t, []rune("ad"), g.Col(0))
	assert.Equal(t, []rune("cf"), g.Col(2))
	assert.Nil(t, g.Col(3))
	assert.Nil(t, g.Col(-1))

	col := g.Col(1)
	col[0] = 'z'
	tile, _ := g.At(Position{X: 1, Y: 0})
	assert.Equal(t, 'b', tile)
}

func TestDirection_OppositeAndOffsets(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Offset()
		ox, oy := d.Opposite().Offset()
		assert.Equal(t, -dx, ox, d.String())
		assert.Equal(t, -dy, oy, d.String())
		assert.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestPosition_StepAndDirectionTo(t *testing.T) {
	p := Position{X: 2, Y: 2}
	assert.Equal(t, Position{X: 1, Y: 2}, p.Step(Left))
	assert.Equal(t, Position{X: 2, Y: 1}, p.Step(Up))

	d, ok := p.DirectionTo(Position{X: 2, Y: 3})
	require.True(t, ok)
	assert.Equal(t, Down, d)

	_, ok = p.DirectionTo(Position{X: 3, Y: 3})
	assert.False(t, ok)
}
