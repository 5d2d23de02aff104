package testutil

import "strings"

// Puzzle is a grid fixture with its known answers.
// Farthest is 0 when the fixture was published without one.
type Puzzle struct {
	Name     string
	Text     string
	Farthest int
	Enclosed int
}

// SmallSquare is a single 3x3 loop with one enclosed cell.
var SmallSquare = Puzzle{
	Name: "small_square",
	Text: `.....
.S-7.
.|.|.
.L-J.
.....`,
	Farthest: 4,
	Enclosed: 1,
}

// Squiggle winds through a 5x5 grid with no extra pipes.
var Squiggle = Puzzle{
	Name: "squiggle",
	Text: `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`,
	Farthest: 8,
	Enclosed: 1,
}

// NoisySquare is SmallSquare's loop surrounded by unconnected pipes.
var NoisySquare = Puzzle{
	Name: "noisy_square",
	Text: `-L|F7
7S-7|
L|7||
-L-J|
L|-JF`,
	Farthest: 4,
	Enclosed: 1,
}

// NoisySquiggle is Squiggle with unconnected pipes in the gaps.
var NoisySquiggle = Puzzle{
	Name: "noisy_squiggle",
	Text: `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ`,
	Farthest: 8,
	Enclosed: 1,
}

// OpenSqueeze has two pockets reachable only by squeezing between pipes;
// those pockets are outside, the four cells at the bottom are inside.
var OpenSqueeze = Puzzle{
	Name: "open_squeeze",
	Text: `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`,
	Farthest: 23,
	Enclosed: 4,
}

// TightSqueeze is OpenSqueeze with no ground gap between the inner walls.
var TightSqueeze = Puzzle{
	Name: "tight_squeeze",
	Text: `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........`,
	Farthest: 22,
	Enclosed: 4,
}

// Nested has pipe noise, a padded border and squeeze gaps.
var Nested = Puzzle{
	Name: "nested",
	Text: `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`,
	Enclosed: 8,
}

// Junkyard fills every non-loop cell with pipe pieces.
var Junkyard = Puzzle{
	Name: "junkyard",
	Text: `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`,
	Enclosed: 10,
}

// AllPuzzles lists every well-formed fixture.
var AllPuzzles = []Puzzle{
	SmallSquare, Squiggle, NoisySquare, NoisySquiggle,
	OpenSqueeze, TightSqueeze, Nested, Junkyard,
}

// Malformed fixtures.
const (
	// RaggedRows has a short second row.
	RaggedRows = ".S-7.\n.|.\n.L-J."

	// NoStart has a loop but no start tile.
	NoStart = ".F-7.\n.|.|.\n.L-J."

	// TwoStarts has a second start tile off the loop.
	TwoStarts = ".S-7.\n.|.|.\n.L-JS"

	// BrokenLoop has a gap in the pipe run.
	BrokenLoop = ".S-7.\n.|...\n.L-J."
)

var horizontalMirror = map[rune]rune{'L': 'J', 'J': 'L', 'F': '7', '7': 'F'}

var verticalMirror = map[rune]rune{'L': 'F', 'F': 'L', 'J': '7', '7': 'J'}

// MirrorHorizontal flips puzzle text left to right, swapping elbow tiles so
// the pipes still connect.
func MirrorHorizontal(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		row := []rune(line)
		for l, r := 0, len(row)-1; l <= r; l, r = l+1, r-1 {
			row[l], row[r] = mirrorRune(row[r], horizontalMirror), mirrorRune(row[l], horizontalMirror)
		}
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// MirrorVertical flips puzzle text top to bottom, swapping elbow tiles so
// the pipes still connect.
func MirrorVertical(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		row := []rune(line)
		for j, r := range row {
			row[j] = mirrorRune(r, verticalMirror)
		}
		out[len(lines)-1-i] = string(row)
	}
	return strings.Join(out, "\n")
}

func mirrorRune(r rune, table map[rune]rune) rune {
	if m, ok := table[r]; ok {
		return m
	}
	return r
}
